// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool

import "context"

// Repository is the persistence contract for tools.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Tool, int, error)
	Get(context context.Context, id int) (*Tool, error)
	Create(context context.Context, tool *Tool) error
	CreateMany(context context.Context, tools []*Tool) error
	Update(context context.Context, tool *Tool) error
	Delete(context context.Context, id int) error
}
