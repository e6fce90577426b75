// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import "context"

// Repository is the persistence contract for tags.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Tag, int, error)
	GetByID(context context.Context, id int) (*Tag, error)
	GetBySlug(context context.Context, slug string) (*Tag, error)
	Create(context context.Context, tag *Tag) error
	CreateMany(context context.Context, tags []*Tag) error
	Update(context context.Context, tag *Tag) error
	Delete(context context.Context, id int) error
}
