// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"errors"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
	"github.com/taibuivan/toolshelf/internal/platform/validate"
)

// # Signup Errors

var (
	ErrMissingFields      = apperr.ValidationError("Email and password are required").WithCode("MISSING_FIELDS")
	ErrInvalidEmailFormat = apperr.ValidationError("Invalid email format").WithCode("INVALID_EMAIL_FORMAT")
	ErrPasswordTooShort   = apperr.ValidationError("Password must be at least 6 characters long").WithCode("PASSWORD_TOO_SHORT")
	ErrInvalidJSON        = validate.ErrInvalidJSON.WithCode("INVALID_JSON")
	ErrEmailExists        = apperr.Conflict("User with this email already exists").WithCode("EMAIL_EXISTS")
)

// # Login Errors

var (
	ErrMissingContentType = apperr.ValidationError("The content type for the request must be specified").WithCode("MISSING_CONTENT_TYPE")
	ErrInvalidLoginBody   = apperr.ValidationError("Invalid request body")
	ErrUserNotFound       = apperr.NotFound("User").WithCode("USER_NOT_FOUND")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials").WithCode("INVALID_CREDENTIALS")
)

// # Gate Errors

var (
	ErrTokenNotFound = apperr.Unauthorized("Token not found").WithCode("TOKEN_NOT_FOUND").WithReason("The access token is not set or expired")

	ErrInvalidOrExpiredToken = apperr.Unauthorized("Invalid or expired token").WithCode("INVALID_TOKEN").WithReason("The access token could not be verified")

	ErrUserIntegrityConflict = apperr.Unauthorized("User integrity conflict").WithCode("USER_INTEGRITY_CONFLICT").WithReason("The current access token does not match the user's granted session")
)

// ErrSessionNotFound is returned by [SessionRepository.FindByEmail] when the
// user has no live session. It never reaches a client unmapped.
var ErrSessionNotFound = errors.New("auth: session not found")
