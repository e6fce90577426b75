// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tooltag

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/toolshelf/internal/core/tag"
	"github.com/taibuivan/toolshelf/internal/core/tool"
	"github.com/taibuivan/toolshelf/internal/platform/apperr"
)

type fakeTools map[int]*tool.Tool

func (tools fakeTools) Get(_ context.Context, id int) (*tool.Tool, error) {
	found, ok := tools[id]
	if !ok {
		return nil, tool.ErrToolNotFound
	}
	return found, nil
}

type fakeTags map[int]*tag.Tag

func (tags fakeTags) Get(_ context.Context, id int) (*tag.Tag, error) {
	found, ok := tags[id]
	if !ok {
		return nil, tag.ErrTagNotFound
	}
	return found, nil
}

// memoryToolTags is an in-memory Repository unique on (toolId, tagId).
type memoryToolTags struct {
	mu     sync.Mutex
	byID   map[int]*ToolTag
	nextID int
}

func newMemoryToolTags() *memoryToolTags {
	return &memoryToolTags{byID: make(map[int]*ToolTag), nextID: 1}
}

func (store *memoryToolTags) pairTaken(association *ToolTag) bool {
	for id, existing := range store.byID {
		if id != association.ID && existing.ToolID == association.ToolID && existing.TagID == association.TagID {
			return true
		}
	}
	return false
}

func (store *memoryToolTags) List(_ context.Context, limit, offset int) ([]*ToolTag, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	associations := make([]*ToolTag, 0)
	for id := 1; id < store.nextID; id++ {
		if existing, ok := store.byID[id]; ok {
			copied := *existing
			associations = append(associations, &copied)
		}
	}
	total := len(associations)
	offset = min(offset, total)
	return associations[offset:min(offset+limit, total)], total, nil
}

func (store *memoryToolTags) Get(_ context.Context, id int) (*ToolTag, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.byID[id]
	if !ok {
		return nil, ErrToolTagNotFound
	}
	copied := *existing
	return &copied, nil
}

func (store *memoryToolTags) Create(_ context.Context, association *ToolTag) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.pairTaken(association) {
		return apperr.Conflict(resourceName + " already exists")
	}
	association.ID = store.nextID
	store.nextID++
	copied := *association
	store.byID[association.ID] = &copied
	return nil
}

func (store *memoryToolTags) Update(_ context.Context, association *ToolTag) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.byID[association.ID]; !ok {
		return ErrToolTagNotFound
	}
	if store.pairTaken(association) {
		return apperr.Conflict(resourceName + " already exists")
	}
	copied := *association
	store.byID[association.ID] = &copied
	return nil
}

func (store *memoryToolTags) Delete(_ context.Context, id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.byID[id]; !ok {
		return ErrToolTagNotFound
	}
	delete(store.byID, id)
	return nil
}

func newTestService() (*Service, *memoryToolTags) {
	store := newMemoryToolTags()
	tools := fakeTools{
		1: {ID: 1, Name: "Hammer"},
		2: {ID: 2, Name: "Saw"},
	}
	tags := fakeTags{
		10: {ID: 10, Name: "Carpentry", Slug: "carpentry"},
		11: {ID: 11, Name: "Metal", Slug: "metal"},
	}
	return NewService(store, tools, tags, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}
