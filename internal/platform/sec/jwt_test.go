// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "toolshelf.test"

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	service, err := NewTokenService(secret, testIssuer, time.Hour)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_EmptySecret checks that a missing key is rejected.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService("", testIssuer, time.Hour)
	require.Error(t, err)
}

/*
TestIssueAndVerify_RoundTrip verifies claims survive signing and parsing.
*/
func TestIssueAndVerify_RoundTrip(t *testing.T) {
	service := newTestTokenService(t, "super-secret")

	issued, err := service.IssueAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, issued.ExpiresAt.Sub(issued.IssuedAt))

	claims, err := service.VerifyToken(issued.Value)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.IssuedAt.Time.Equal(issued.IssuedAt))
	assert.True(t, claims.ExpiresAt.Time.Equal(issued.ExpiresAt))
}

/*
TestIssue_DistinctTokensWithinSameSecond guards session supersession: two
logins in the same second must not yield the same token string.
*/
func TestIssue_DistinctTokensWithinSameSecond(t *testing.T) {
	service := newTestTokenService(t, "super-secret")
	frozen := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	service.now = func() time.Time { return frozen }

	first, err := service.IssueAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)
	second, err := service.IssueAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.Value, second.Value)
}

func TestVerifyToken_Expired(t *testing.T) {
	service := newTestTokenService(t, "super-secret")
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	issued, err := service.IssueAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.VerifyToken(issued.Value)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issued, err := newTestTokenService(t, "right-secret").IssueAccessToken("u2", "bob@example.com")
	require.NoError(t, err)

	_, err = newTestTokenService(t, "wrong-secret").VerifyToken(issued.Value)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_Malformed(t *testing.T) {
	_, err := newTestTokenService(t, "k").VerifyToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

/*
TestVerifyToken_RejectsOtherIssuer checks tokens signed with the right key
but for a different service are refused.
*/
func TestVerifyToken_RejectsOtherIssuer(t *testing.T) {
	other, err := NewTokenService("shared", "someone.else", time.Hour)
	require.NoError(t, err)
	issued, err := other.IssueAccessToken("u3", "carol@example.com")
	require.NoError(t, err)

	_, err = newTestTokenService(t, "shared").VerifyToken(issued.Value)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_MissingEmailClaim(t *testing.T) {
	service := newTestTokenService(t, "super-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "u4",
	})
	signed, err := token.SignedString([]byte("super-secret"))
	require.NoError(t, err)

	_, err = service.VerifyToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
