// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
)

// memoryTags is an in-memory Repository keyed by slug uniqueness.
type memoryTags struct {
	mu     sync.Mutex
	byID   map[int]*Tag
	nextID int
}

func newMemoryTags() *memoryTags {
	return &memoryTags{byID: make(map[int]*Tag), nextID: 1}
}

func (store *memoryTags) slugTaken(value string, except int) bool {
	for id, t := range store.byID {
		if id != except && t.Slug == value {
			return true
		}
	}
	return false
}

func (store *memoryTags) List(_ context.Context, limit, offset int) ([]*Tag, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	all := make([]*Tag, 0, len(store.byID))
	for _, t := range store.byID {
		copied := *t
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	if offset > len(all) {
		offset = len(all)
	}
	end := min(offset+limit, len(all))
	return all[offset:end], len(all), nil
}

func (store *memoryTags) GetByID(_ context.Context, id int) (*Tag, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	t, ok := store.byID[id]
	if !ok {
		return nil, ErrTagNotFound
	}
	copied := *t
	return &copied, nil
}

func (store *memoryTags) GetBySlug(_ context.Context, value string) (*Tag, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, t := range store.byID {
		if t.Slug == value {
			copied := *t
			return &copied, nil
		}
	}
	return nil, ErrTagNotFound
}

func (store *memoryTags) insert(t *Tag) error {
	if store.slugTaken(t.Slug, 0) {
		return apperr.Conflict(resourceName + " already exists")
	}
	t.ID = store.nextID
	t.CreatedAt = time.Now()
	store.nextID++
	copied := *t
	store.byID[t.ID] = &copied
	return nil
}

func (store *memoryTags) Create(_ context.Context, t *Tag) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.insert(t)
}

func (store *memoryTags) CreateMany(_ context.Context, tags []*Tag) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	inserted := make([]int, 0, len(tags))
	for _, t := range tags {
		if err := store.insert(t); err != nil {
			for _, id := range inserted {
				delete(store.byID, id)
			}
			return err
		}
		inserted = append(inserted, t.ID)
	}
	return nil
}

func (store *memoryTags) Update(_ context.Context, t *Tag) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.byID[t.ID]
	if !ok {
		return ErrTagNotFound
	}
	if store.slugTaken(t.Slug, t.ID) {
		return apperr.Conflict(resourceName + " already exists")
	}
	existing.Name, existing.Slug = t.Name, t.Slug
	t.CreatedAt = existing.CreatedAt
	return nil
}

func (store *memoryTags) Delete(_ context.Context, id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.byID[id]; !ok {
		return ErrTagNotFound
	}
	delete(store.byID, id)
	return nil
}

func (store *memoryTags) count() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.byID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
