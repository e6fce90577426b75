// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tag manages the labels that can be attached to tools.
package tag

import (
	"time"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
)

// Tag is a label keyed by the URL slug of its name.
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// MaxNameLength bounds a tag name in characters.
const MaxNameLength = 20

// Global field names for validation
const (
	FieldName = "name"
	FieldTags = "tags"
)

const resourceName = "Tag"

// ErrTagNotFound is returned when no tag matches the requested id or slug.
var ErrTagNotFound = apperr.NotFound(resourceName)
