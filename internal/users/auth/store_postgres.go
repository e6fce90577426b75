// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/toolshelf/internal/platform/database/schema"
	"github.com/taibuivan/toolshelf/internal/platform/dberr"
	"github.com/taibuivan/toolshelf/internal/platform/postgres"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
Create persists a new user record into the users.account table.

Description: Email uniqueness is enforced by the table constraint; a violation
surfaces as ErrEmailExists so the signup flow needs no pre-check.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: ErrEmailExists or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Salt,
		schema.UserAccount.HashedPassword, schema.UserAccount.CreatedAt,
	)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := repository.db.Exec(context, query,
		user.ID,
		user.Email,
		user.Salt,
		user.HashedPassword,
		user.CreatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: ErrUserNotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Salt,
		schema.UserAccount.HashedPassword, schema.UserAccount.CreatedAt,
		schema.UserAccount.Table, schema.UserAccount.Email,
	)

	user := &User{}
	err := repository.db.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Salt,
		&user.HashedPassword,
		&user.CreatedAt,
	)

	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", err)
	}

	return user, nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface using pgx.
type PostgresSessionRepository struct {
	db postgres.DBTX
}

// NewSessionRepository creates a new PostgreSQL implementation of the SessionRepository.
func NewSessionRepository(db postgres.DBTX) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

/*
Replace upserts the session keyed by user email.

Description: The unique email column turns "delete prior, insert new" into
one statement, so a racing login simply overwrites the row.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Persistence failures
*/
func (repository *PostgresSessionRepository) Replace(context context.Context, session *Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s, %[6]s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%[3]s) DO UPDATE SET
			%[2]s = EXCLUDED.%[2]s,
			%[4]s = EXCLUDED.%[4]s,
			%[5]s = EXCLUDED.%[5]s,
			%[6]s = EXCLUDED.%[6]s`,
		schema.UserSession.Table,
		schema.UserSession.ID, schema.UserSession.UserEmail, schema.UserSession.AccessToken,
		schema.UserSession.CreatedAt, schema.UserSession.ExpirationTime,
	)

	_, err := repository.db.Exec(context, query,
		session.ID,
		session.UserEmail,
		session.AccessToken,
		session.CreatedAt,
		session.ExpirationTime,
	)

	if err != nil {
		return fmt.Errorf("postgres_session_repo_replace_failed: %w", err)
	}

	return nil
}

/*
FindByEmail returns the session currently granted to email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Session: Hydrated entity
  - error: ErrSessionNotFound or database errors
*/
func (repository *PostgresSessionRepository) FindByEmail(context context.Context, email string) (*Session, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.UserSession.ID, schema.UserSession.UserEmail, schema.UserSession.AccessToken,
		schema.UserSession.CreatedAt, schema.UserSession.ExpirationTime,
		schema.UserSession.Table, schema.UserSession.UserEmail,
	)

	session := &Session{}
	err := repository.db.QueryRow(context, query, email).Scan(
		&session.ID,
		&session.UserEmail,
		&session.AccessToken,
		&session.CreatedAt,
		&session.ExpirationTime,
	)

	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("postgres_session_repo_find_by_email_failed: %w", err)
	}

	return session, nil
}

/*
DeleteByToken removes the session only when both email and token match.

Parameters:
  - context: context.Context
  - email: string
  - accessToken: string

Returns:
  - bool: True when a row was deleted
  - error: Persistence failures
*/
func (repository *PostgresSessionRepository) DeleteByToken(context context.Context, email, accessToken string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.UserSession.Table, schema.UserSession.UserEmail, schema.UserSession.AccessToken,
	)

	tag, err := repository.db.Exec(context, query, email, accessToken)
	if err != nil {
		return false, fmt.Errorf("postgres_session_repo_delete_failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
