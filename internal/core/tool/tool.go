// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tool manages the catalogue of tools served behind the auth gate.
package tool

import (
	"time"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
)

// Tool is a named entry of the shelf.
type Tool struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// MaxNameLength bounds a tool name in characters.
const MaxNameLength = 20

// Global field names for validation
const (
	FieldName  = "name"
	FieldTools = "tools"
)

// resourceName is the label used in not found and conflict messages.
const resourceName = "Tool"

// ErrToolNotFound is returned when no tool has the requested id.
var ErrToolNotFound = apperr.NotFound(resourceName)
