// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
)

// memoryTools is an in-memory Repository enforcing unique names.
type memoryTools struct {
	mu     sync.Mutex
	byID   map[int]*Tool
	nextID int
	err    error
}

func newMemoryTools() *memoryTools {
	return &memoryTools{byID: make(map[int]*Tool), nextID: 1}
}

func (store *memoryTools) nameTaken(name string, except int) bool {
	for id, tool := range store.byID {
		if id != except && tool.Name == name {
			return true
		}
	}
	return false
}

func (store *memoryTools) List(_ context.Context, limit, offset int) ([]*Tool, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return nil, 0, store.err
	}
	ids := make([]int, 0, len(store.byID))
	for id := range store.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	tools := make([]*Tool, 0)
	for index, id := range ids {
		if index >= offset && len(tools) < limit {
			copied := *store.byID[id]
			tools = append(tools, &copied)
		}
	}
	return tools, len(ids), nil
}

func (store *memoryTools) Get(_ context.Context, id int) (*Tool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	tool, ok := store.byID[id]
	if !ok {
		return nil, ErrToolNotFound
	}
	copied := *tool
	return &copied, nil
}

func (store *memoryTools) insert(tool *Tool) error {
	if store.nameTaken(tool.Name, 0) {
		return apperr.Conflict(resourceName + " already exists")
	}
	tool.ID = store.nextID
	tool.CreatedAt = time.Now()
	store.nextID++
	copied := *tool
	store.byID[tool.ID] = &copied
	return nil
}

func (store *memoryTools) Create(_ context.Context, tool *Tool) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return store.err
	}
	return store.insert(tool)
}

func (store *memoryTools) CreateMany(_ context.Context, tools []*Tool) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return store.err
	}

	snapshot := make(map[int]*Tool, len(store.byID))
	for id, tool := range store.byID {
		snapshot[id] = tool
	}
	nextID := store.nextID

	for _, tool := range tools {
		if err := store.insert(tool); err != nil {
			store.byID, store.nextID = snapshot, nextID
			return err
		}
	}
	return nil
}

func (store *memoryTools) Update(_ context.Context, tool *Tool) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.byID[tool.ID]
	if !ok {
		return ErrToolNotFound
	}
	if store.nameTaken(tool.Name, tool.ID) {
		return apperr.Conflict(resourceName + " already exists")
	}
	existing.Name = tool.Name
	tool.CreatedAt = existing.CreatedAt
	return nil
}

func (store *memoryTools) Delete(_ context.Context, id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.byID[id]; !ok {
		return ErrToolNotFound
	}
	delete(store.byID, id)
	return nil
}

func (store *memoryTools) count() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.byID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
