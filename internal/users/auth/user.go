// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user signup, login, logoff and the auth gate.

It defines the domain entities (User, Session), their storage contracts, the
service orchestrating the login lifecycle, and the HTTP delivery layer.

# Architecture

A request is authenticated only when its access token verifies AND equals the
token stored in the user's single live session. Replacing or deleting that
session therefore revokes the token before it expires on its own.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered account.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Salt           string    `json:"-"`
	HashedPassword string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt      time.Time `json:"created_at"`
}

// Session is the server-side record of the currently granted access token.
//
// There is at most one session per email. A new login replaces it.
type Session struct {
	ID             string    `json:"id"`
	UserEmail      string    `json:"user_email"`
	AccessToken    string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	ExpirationTime time.Time `json:"expiration_time"`
}

// Expired reports whether the session validity window has closed at now.
func (session *Session) Expired(now time.Time) bool {
	return !now.Before(session.ExpirationTime)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)
