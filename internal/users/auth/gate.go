// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
	"github.com/taibuivan/toolshelf/internal/platform/ctxutil"
	"github.com/taibuivan/toolshelf/internal/platform/respond"
)

// Gate guards protected routes with the access token cookie.
//
// # Flow
//  1. Read the access_token cookie.
//  2. Verify signature and expiry, then compare with the live session.
//  3. On success, inject [*sec.AuthClaims] into the request context.
//
// Rejections use the structured `{ error: { code, message, details } }` envelope.
func Gate(service *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := service.Authenticate(request.Context(), tokenFromRequest(request))
			if err != nil {
				if apperr.IsAppError(err) {
					respond.Structured(writer, request, err)
					return
				}
				respond.Error(writer, request, err)
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
