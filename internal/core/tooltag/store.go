// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tooltag

import (
	"context"

	"github.com/taibuivan/toolshelf/internal/core/tag"
	"github.com/taibuivan/toolshelf/internal/core/tool"
)

// Repository is the persistence contract for associations.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*ToolTag, int, error)
	Get(context context.Context, id int) (*ToolTag, error)
	Create(context context.Context, association *ToolTag) error
	Update(context context.Context, association *ToolTag) error
	Delete(context context.Context, id int) error
}

// ToolReader resolves a tool by id. [*tool.Service] satisfies it.
type ToolReader interface {
	Get(context context.Context, id int) (*tool.Tool, error)
}

// TagReader resolves a tag by id. [*tag.Service] satisfies it.
type TagReader interface {
	Get(context context.Context, id int) (*tag.Tag, error)
}
