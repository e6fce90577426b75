// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var (
	accountColumns = []string{"id", "email", "salt", "hashedpassword", "createdat"}
	sessionColumns = []string{"id", "useremail", "accesstoken", "createdat", "expirationtime"}
)

func TestPostgresUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repository := NewUserRepository(mock)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &User{ID: "u-1", Email: "a@example.com", Salt: "ab", HashedPassword: "cd", CreatedAt: createdAt}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users.account (id, email, salt, hashedpassword, createdat)")).
		WithArgs("u-1", "a@example.com", "ab", "cd", createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repository.Create(context.Background(), user))
}

/*
TestPostgresUserRepository_Create_Duplicate maps SQLSTATE 23505 to ErrEmailExists.
*/
func TestPostgresUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repository := NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users.account")).
		WithArgs("u-1", "a@example.com", "ab", "cd", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repository.Create(context.Background(), &User{ID: "u-1", Email: "a@example.com", Salt: "ab", HashedPassword: "cd"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestPostgresUserRepository_FindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repository := NewUserRepository(mock)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users.account WHERE email = $1")).
		WithArgs("a@example.com").
		WillReturnRows(pgxmock.NewRows(accountColumns).AddRow("u-1", "a@example.com", "ab", "cd", createdAt))

	user, err := repository.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "ab", user.Salt)
	assert.Equal(t, createdAt, user.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users.account WHERE email = $1")).
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repository.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostgresUserRepository_FindByEmail_Failure(t *testing.T) {
	mock := newMockPool(t)
	repository := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users.account")).
		WithArgs("a@example.com").
		WillReturnError(errors.New("conn closed"))

	_, err := repository.FindByEmail(context.Background(), "a@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

/*
TestPostgresSessionRepository_Replace upserts on the unique email column.
*/
func TestPostgresSessionRepository_Replace(t *testing.T) {
	mock := newMockPool(t)
	repository := NewSessionRepository(mock)
	now := time.Now().UTC().Truncate(time.Second)
	session := &Session{ID: "s-1", UserEmail: "a@example.com", AccessToken: "tok", CreatedAt: now, ExpirationTime: now.Add(AccessTokenTTL)}

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (useremail) DO UPDATE SET")).
		WithArgs("s-1", "a@example.com", "tok", now, now.Add(AccessTokenTTL)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repository.Replace(context.Background(), session))
}

func TestPostgresSessionRepository_FindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repository := NewSessionRepository(mock)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users.session WHERE useremail = $1")).
		WithArgs("a@example.com").
		WillReturnRows(pgxmock.NewRows(sessionColumns).AddRow("s-1", "a@example.com", "tok", now, now.Add(time.Hour)))

	session, err := repository.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.AccessToken)
	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Hour)))

	mock.ExpectQuery(regexp.QuoteMeta("FROM users.session")).
		WithArgs("b@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repository.FindByEmail(context.Background(), "b@example.com")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

/*
TestPostgresSessionRepository_DeleteByToken reports whether the exact pair matched.
*/
func TestPostgresSessionRepository_DeleteByToken(t *testing.T) {
	mock := newMockPool(t)
	repository := NewSessionRepository(mock)
	query := regexp.QuoteMeta("DELETE FROM users.session WHERE useremail = $1 AND accesstoken = $2")

	mock.ExpectExec(query).WithArgs("a@example.com", "tok").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repository.DeleteByToken(context.Background(), "a@example.com", "tok")
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(query).WithArgs("a@example.com", "stale").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repository.DeleteByToken(context.Background(), "a@example.com", "stale")
	require.NoError(t, err)
	assert.False(t, deleted)
}
