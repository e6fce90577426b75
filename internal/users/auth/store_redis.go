// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/toolshelf/internal/platform/constants"
)

// Hash fields of a session entry.
const (
	redisFieldID             = "id"
	redisFieldUserEmail      = "useremail"
	redisFieldAccessToken    = "accesstoken"
	redisFieldCreatedAt      = "createdat"
	redisFieldExpirationTime = "expirationtime"
)

// deleteIfTokenMatches drops the session hash only while it still holds ARGV[1].
var deleteIfTokenMatches = redis.NewScript(`
if redis.call("HGET", KEYS[1], "accesstoken") == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSessionRepository implements SessionRepository using Redis hashes.
//
// Each session lives at auth:session:<email> and expires together with its token.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(email string) string {
	return constants.RedisPrefixSession + email
}

/*
Replace overwrites the session hash of the user inside a MULTI block.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Replace(context context.Context, session *Session) error {
	key := sessionKey(session.UserEmail)

	pipe := repository.client.TxPipeline()
	pipe.Del(context, key)
	pipe.HSet(context, key, map[string]any{
		redisFieldID:             session.ID,
		redisFieldUserEmail:      session.UserEmail,
		redisFieldAccessToken:    session.AccessToken,
		redisFieldCreatedAt:      session.CreatedAt.UTC().Format(time.RFC3339Nano),
		redisFieldExpirationTime: session.ExpirationTime.UTC().Format(time.RFC3339Nano),
	})
	pipe.ExpireAt(context, key, session.ExpirationTime)

	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_replace_failed: %w", err)
	}

	return nil
}

/*
FindByEmail loads the session hash of a user.

Description: A missing key, including one Redis already expired, yields ErrSessionNotFound.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Session: Hydrated entity
  - error: ErrSessionNotFound or connectivity errors
*/
func (repository *RedisSessionRepository) FindByEmail(context context.Context, email string) (*Session, error) {
	fields, err := repository.client.HGetAll(context, sessionKey(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields[redisFieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	expirationTime, err := time.Parse(time.RFC3339Nano, fields[redisFieldExpirationTime])
	if err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	return &Session{
		ID:             fields[redisFieldID],
		UserEmail:      fields[redisFieldUserEmail],
		AccessToken:    fields[redisFieldAccessToken],
		CreatedAt:      createdAt,
		ExpirationTime: expirationTime,
	}, nil
}

/*
DeleteByToken atomically removes the session if it still holds accessToken.

Parameters:
  - context: context.Context
  - email: string
  - accessToken: string

Returns:
  - bool: True when the key was deleted
  - error: Execution failures
*/
func (repository *RedisSessionRepository) DeleteByToken(context context.Context, email, accessToken string) (bool, error) {
	deleted, err := deleteIfTokenMatches.Run(context, repository.client, []string{sessionKey(email)}, accessToken).Int()
	if err != nil {
		return false, fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return deleted > 0, nil
}
