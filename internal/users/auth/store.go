// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: ErrEmailExists on a duplicate email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)
}

// # Session Data Access

// SessionRepository defines the data access contract for login sessions.
type SessionRepository interface {

	/*
		Replace stores session as the only session of its user, dropping any prior one.

		Concurrent logins for the same user are last-writer-wins.

		Parameters:
		  - context: context.Context
		  - session: *Session

		Returns:
		  - error: Persistence failures
	*/
	Replace(context context.Context, session *Session) error

	/*
		FindByEmail returns the live session of a user.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Session: Hydrated entity
		  - error: ErrSessionNotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Session, error)

	/*
		DeleteByToken removes the session of email only if it still holds accessToken.

		Parameters:
		  - context: context.Context
		  - email: string
		  - accessToken: string

		Returns:
		  - bool: Whether a session was removed
		  - error: Persistence failures
	*/
	DeleteByToken(context context.Context, email, accessToken string) (bool, error)
}
