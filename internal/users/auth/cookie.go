// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/taibuivan/toolshelf/internal/platform/constants"
	"github.com/taibuivan/toolshelf/internal/platform/sec"
)

// setAccessTokenCookie attaches token as an HttpOnly, SameSite=Strict cookie
// whose Max-Age equals the token validity window.
func setAccessTokenCookie(writer http.ResponseWriter, token *sec.IssuedToken, secure bool) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    token.Value,
		Path:     constants.AccessTokenCookiePath,
		MaxAge:   int(token.ExpiresAt.Sub(token.IssuedAt).Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearAccessTokenCookie tells the client to drop the access token immediately.
func clearAccessTokenCookie(writer http.ResponseWriter, secure bool) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AccessTokenCookieName,
		Value:    "",
		Path:     constants.AccessTokenCookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// tokenFromRequest returns the access token cookie value, or "" when absent.
func tokenFromRequest(request *http.Request) string {
	cookie, err := request.Cookie(constants.AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
