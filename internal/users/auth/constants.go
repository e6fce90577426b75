// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the validity window of an access token and its session.
	AccessTokenTTL = 1 * time.Hour

	// MinPasswordLength is the shortest password accepted at signup and login.
	MinPasswordLength = 6
)

// Gate rejection reasons, used as log attributes and metric labels.
const (
	reasonTokenMissing   = "token_missing"
	reasonTokenExpired   = "token_expired"
	reasonTokenInvalid   = "token_invalid"
	reasonSessionMissing = "session_missing"
	reasonTokenMismatch  = "token_superseded"
	reasonSessionExpired = "session_expired"
)

// Login rejection reasons.
const (
	reasonUserNotFound       = "user_not_found"
	reasonInvalidCredentials = "invalid_credentials"
)

// attributeRejectReason is the span attribute carrying a rejection reason.
const attributeRejectReason = "auth.reject_reason"
