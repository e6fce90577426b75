// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tooltag links tools to tags.

Each association stores a copy of the tool and tag names next to their ids.
The service looks both up and embeds the names whenever an association is
created or moved, so listing never joins.
*/
package tooltag

import "github.com/taibuivan/toolshelf/internal/platform/apperr"

// ToolTag associates one tool with one tag.
type ToolTag struct {
	ID       int    `json:"id"`
	ToolID   int    `json:"toolId"`
	TagID    int    `json:"tagId"`
	ToolName string `json:"toolName"`
	TagName  string `json:"tagName"`
}

// Bounds for referenced ids.
const (
	MinReferenceID = 1
	MaxReferenceID = 99999
)

// Global field names for validation
const (
	FieldID     = "id"
	FieldToolID = "toolId"
	FieldTagID  = "tagId"
)

const resourceName = "Tool tag"

// ErrToolTagNotFound is returned when no association has the requested id.
var ErrToolTagNotFound = apperr.NotFound(resourceName)
