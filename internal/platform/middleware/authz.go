// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
	"github.com/taibuivan/toolshelf/internal/platform/ctxutil"
	"github.com/taibuivan/toolshelf/internal/platform/respond"
)

// RequireAuth blocks requests that carry no authenticated identity.
//
// # Usage
//
// Resource routers mount it so they refuse to serve if they are ever wired
// without the auth gate in front of them.
//
// # Flow
//  1. Check if [*sec.AuthClaims] exists in context.
//  2. If missing, abort with HTTP 401 in the structured envelope.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Structured(writer, request, apperr.Unauthorized("Authentication required").
				WithReason("The access token is not set or expired"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
