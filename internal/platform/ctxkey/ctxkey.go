// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the keys under which request-scoped values travel
// through [context.Context]: the correlation id set by RequestID, the child
// logger set by StructuredLogger, the claims placed by the auth gate, and the
// verbose-errors flag read by the error responder.
//
// Only ctxutil reads or writes these keys.
package ctxkey

// key is unexported so no other package can build a colliding key.
type key int

const (
	// KeyRequestID carries the X-Request-ID value.
	KeyRequestID key = iota

	// KeyLogger carries the per-request *slog.Logger.
	KeyLogger

	// KeyUser carries the *sec.AuthClaims admitted by the auth gate.
	KeyUser

	// KeyVerboseErrors is true when 5xx bodies may include their cause.
	KeyVerboseErrors
)
