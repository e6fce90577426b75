// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the auth.TokenProvider interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/toolshelf/pkg/uuidv7"
)

var (
	// ErrTokenExpired is returned by [TokenService.VerifyToken] when the
	// signature is valid but the exp claim is in the past.
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrTokenInvalid covers malformed tokens, bad signatures and
	// unexpected signing methods.
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// The email is what links a token to its server-side session; the session
// cross-check in the auth gate looks the session up by it.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"id"`
	Email  string `json:"email"`
}

// IssuedToken is a signed access token together with its validity window.
type IssuedToken struct {
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService handles generation and verification of JWT tokens using HS256.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
	now        func() time.Time
}

// NewTokenService creates a new TokenService.
//
// An empty secret is rejected: the key is process-wide configuration and its
// absence must stop the server at startup.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("auth: jwt secret key is empty")
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
		now:        time.Now,
	}, nil
}

// IssueAccessToken signs a new access token for a user.
//
// Every token carries a fresh jti, so two logins within the same second
// still produce distinct strings and the older one can be told apart.
func (service *TokenService) IssueAccessToken(userID, email string) (*IssuedToken, error) {
	// Second precision matches what NumericDate serialises.
	issuedAt := service.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(service.timeToLive)

	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuidv7.New(),
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return &IssuedToken{
		Value:     signedToken,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// It returns [ErrTokenExpired] or [ErrTokenInvalid] (wrapping the parser error)
// so callers can tell the two apart in logs and metrics.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	},
		jwt.WithIssuer(service.issuer),
		jwt.WithTimeFunc(service.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: email claim missing", ErrTokenInvalid)
	}

	return claims, nil
}
