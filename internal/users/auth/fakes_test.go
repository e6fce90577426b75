// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/toolshelf/internal/platform/constants"
	"github.com/taibuivan/toolshelf/internal/platform/sec"
)

// memoryUsers is an in-memory UserRepository.
type memoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*User
	err     error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*User)}
}

func (store *memoryUsers) Create(_ context.Context, user *User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return store.err
	}
	if _, exists := store.byEmail[user.Email]; exists {
		return ErrEmailExists
	}
	copied := *user
	store.byEmail[user.Email] = &copied
	return nil
}

func (store *memoryUsers) FindByEmail(_ context.Context, email string) (*User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return nil, store.err
	}
	user, ok := store.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// memorySessions is an in-memory SessionRepository.
type memorySessions struct {
	mu      sync.Mutex
	byEmail map[string]*Session
	err     error
}

func newMemorySessions() *memorySessions {
	return &memorySessions{byEmail: make(map[string]*Session)}
}

func (store *memorySessions) Replace(_ context.Context, session *Session) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return store.err
	}
	copied := *session
	store.byEmail[session.UserEmail] = &copied
	return nil
}

func (store *memorySessions) FindByEmail(_ context.Context, email string) (*Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return nil, store.err
	}
	session, ok := store.byEmail[email]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (store *memorySessions) DeleteByToken(_ context.Context, email, accessToken string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.err != nil {
		return false, store.err
	}
	session, ok := store.byEmail[email]
	if !ok || session.AccessToken != accessToken {
		return false, nil
	}
	delete(store.byEmail, email)
	return true, nil
}

func (store *memorySessions) count() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.byEmail)
}

var errStorageDown = errors.New("connection refused")

type fixture struct {
	users    *memoryUsers
	sessions *memorySessions
	tokens   *sec.TokenService
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithTTL(t, AccessTokenTTL)
}

func newFixtureWithTTL(t *testing.T, timeToLive time.Duration) *fixture {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret", constants.AuthIssuer, timeToLive)
	require.NoError(t, err)

	users := newMemoryUsers()
	sessions := newMemorySessions()

	return &fixture{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		service:  NewService(users, sessions, tokens, nil),
	}
}
