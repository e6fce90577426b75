// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// Account and session rows use them as primary keys, and every access token
// carries one as its jti.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// IsV7 reports whether s is a well-formed version 7 UUID.
func IsV7(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.Version() == 7
}
