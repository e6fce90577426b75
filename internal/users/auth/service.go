// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taibuivan/toolshelf/internal/platform/ctxutil"
	"github.com/taibuivan/toolshelf/internal/platform/metrics"
	"github.com/taibuivan/toolshelf/internal/platform/sec"
	"github.com/taibuivan/toolshelf/internal/platform/validate"
	"github.com/taibuivan/toolshelf/pkg/uuidv7"
)

const tracerName = "github.com/taibuivan/toolshelf/internal/users/auth"

// # Contracts & Types

// TokenProvider defines the contract for issuing and verifying access tokens.
type TokenProvider interface {
	// IssueAccessToken signs a token for the given account.
	IssueAccessToken(userID, email string) (*sec.IssuedToken, error)

	// VerifyToken returns the embedded claims, or an error wrapping
	// [sec.ErrTokenExpired] or [sec.ErrTokenInvalid].
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Service implements the signup, login, logoff and session check use cases.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	recorder          *metrics.Recorder
	tracer            trace.Tracer
}

// Option customizes a [Service] at construction.
type Option func(*Service)

// WithTracerProvider starts the service spans from provider instead of the
// globally installed one.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(service *Service) {
		service.tracer = provider.Tracer(tracerName)
	}
}

// NewService constructs a new [Service] with necessary dependencies.
//
// recorder may be nil.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	recorder *metrics.Recorder,
	options ...Option,
) *Service {
	service := &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		recorder:          recorder,
		tracer:            otel.Tracer(tracerName),
	}
	for _, option := range options {
		option(service)
	}
	return service
}

// Credentials is the typed signup and login payload.
type Credentials struct {
	Email    string
	Password string
}

// # Registration Flow

/*
Register validates, hashes, and persists a brand new user account.

Description: Checks run in a fixed order and the first failure wins:
missing fields, email format, password length.

Parameters:
  - context: context.Context
  - input: Credentials

Returns:
  - *User: Created entity
  - error: Validation, ErrEmailExists or storage errors
*/
func (service *Service) Register(context context.Context, input Credentials) (*User, error) {
	context, span := service.tracer.Start(context, "auth.Register")
	defer span.End()

	logger := ctxutil.GetLogger(context)

	// ── 1. Input Rules ───────────────────────────────────────────────────
	if err := validateSignup(input); err != nil {
		service.recorder.Signup(metrics.ResultFailure)
		return nil, err
	}

	// ── 2. Salt & Hash ───────────────────────────────────────────────────
	salt, err := sec.GenerateSalt()
	if err != nil {
		service.recorder.Signup(metrics.ResultError)
		return nil, fail(span, fmt.Errorf("auth_service_salt_failed: %w", err))
	}

	user := &User{
		ID:             uuidv7.New(),
		Email:          input.Email,
		Salt:           salt,
		HashedPassword: sec.HashPassword(input.Password, salt),
		CreatedAt:      time.Now().UTC(),
	}

	// ── 3. Persistence ───────────────────────────────────────────────────
	if err := service.userRepository.Create(context, user); err != nil {
		if errors.Is(err, ErrEmailExists) {
			service.recorder.Signup(metrics.ResultFailure)
			logger.InfoContext(context, "signup_rejected_duplicate_email")
			return nil, ErrEmailExists
		}
		service.recorder.Signup(metrics.ResultError)
		return nil, fail(span, fmt.Errorf("auth_service_register_failed: %w", err))
	}

	service.recorder.Signup(metrics.ResultSuccess)
	logger.InfoContext(context, "signup_succeeded", slog.String("user_id", user.ID))

	return user, nil
}

// validateSignup applies the signup input rules in order.
func validateSignup(input Credentials) error {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return ErrMissingFields
	}

	if !validate.IsEmail(input.Email) {
		return ErrInvalidEmailFormat
	}

	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// # Authentication Flow

// LoginResult is a successfully established session.
type LoginResult struct {
	User  *User
	Token *sec.IssuedToken
}

/*
Login verifies credentials, issues a token and makes it the user's only session.

Parameters:
  - context: context.Context
  - input: Credentials

Returns:
  - *LoginResult: Token and account
  - error: ErrUserNotFound, ErrInvalidCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input Credentials) (*LoginResult, error) {
	context, span := service.tracer.Start(context, "auth.Login")
	defer span.End()

	logger := ctxutil.GetLogger(context)

	// ── 1. Account Lookup ────────────────────────────────────────────────
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			service.recorder.Login(metrics.ResultFailure)
			logger.InfoContext(context, "login_rejected", slog.String("reason", reasonUserNotFound))
			return nil, refuse(span, reasonUserNotFound, ErrUserNotFound)
		}
		service.recorder.Login(metrics.ResultError)
		return nil, fail(span, fmt.Errorf("auth_service_find_user_failed: %w", err))
	}

	span.SetAttributes(attribute.String("user.id", user.ID))

	// ── 2. Password Check ────────────────────────────────────────────────
	if !sec.VerifyPassword(input.Password, user.Salt, user.HashedPassword) {
		service.recorder.Login(metrics.ResultFailure)
		logger.InfoContext(context, "login_rejected",
			slog.String("reason", reasonInvalidCredentials),
			slog.String("user_id", user.ID),
		)
		return nil, refuse(span, reasonInvalidCredentials, ErrInvalidCredentials)
	}

	// ── 3. Token Issuance ────────────────────────────────────────────────
	token, err := service.tokenProvider.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		service.recorder.Login(metrics.ResultError)
		return nil, fail(span, fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	// ── 4. Session Supersession ──────────────────────────────────────────
	session := &Session{
		ID:             uuidv7.New(),
		UserEmail:      user.Email,
		AccessToken:    token.Value,
		CreatedAt:      token.IssuedAt,
		ExpirationTime: token.ExpiresAt,
	}

	if err := service.sessionRepository.Replace(context, session); err != nil {
		service.recorder.Login(metrics.ResultError)
		return nil, fail(span, fmt.Errorf("auth_service_session_creation_failed: %w", err))
	}

	service.recorder.Login(metrics.ResultSuccess)
	logger.InfoContext(context, "login_succeeded", slog.String("user_id", user.ID))

	return &LoginResult{User: user, Token: token}, nil
}

// # Session Check

/*
Authenticate runs the two-step check behind the auth gate.

Description: The token must verify AND equal the token of the user's live
session, and that session must still be inside its validity window. Every rejection is one of ErrTokenNotFound, ErrInvalidOrExpiredToken
or ErrUserIntegrityConflict; storage failures come back as plain errors.

Parameters:
  - context: context.Context
  - token: string (raw cookie value)

Returns:
  - *sec.AuthClaims: Verified identity
  - error: Gate rejection or storage failure
*/
func (service *Service) Authenticate(context context.Context, token string) (*sec.AuthClaims, error) {
	context, span := service.tracer.Start(context, "auth.Authenticate")
	defer span.End()

	// ── 1. Presence ──────────────────────────────────────────────────────
	if token == "" {
		return nil, service.reject(context, reasonTokenMissing, ErrTokenNotFound)
	}

	// ── 2. Signature & Expiry ────────────────────────────────────────────
	claims, err := service.tokenProvider.VerifyToken(token)
	if err != nil {
		reason := reasonTokenInvalid
		if errors.Is(err, sec.ErrTokenExpired) {
			reason = reasonTokenExpired
		}
		return nil, service.reject(context, reason, ErrInvalidOrExpiredToken)
	}

	// ── 3. Session Cross-Check ───────────────────────────────────────────
	session, err := service.sessionRepository.FindByEmail(context, claims.Email)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, service.reject(context, reasonSessionMissing, ErrUserIntegrityConflict)
		}
		return nil, fail(span, fmt.Errorf("auth_service_find_session_failed: %w", err))
	}

	if subtle.ConstantTimeCompare([]byte(session.AccessToken), []byte(token)) != 1 {
		return nil, service.reject(context, reasonTokenMismatch, ErrUserIntegrityConflict)
	}

	if session.Expired(time.Now()) {
		return nil, service.reject(context, reasonSessionExpired, ErrInvalidOrExpiredToken)
	}

	span.SetAttributes(attribute.String("user.id", claims.UserID))
	return claims, nil
}

// reject logs and counts a gate refusal, then returns err unchanged.
func (service *Service) reject(context context.Context, reason string, err error) error {
	service.recorder.GateRejected(reason)
	ctxutil.GetLogger(context).WarnContext(context, "auth_gate_rejected", slog.String("reason", reason))
	return refuse(trace.SpanFromContext(context), reason, err)
}

// # Logoff Flow

/*
Logout deletes the session of email when it still holds token.

Description: A session that was already superseded or removed is not an
error; the caller clears the cookie either way.

Parameters:
  - context: context.Context
  - email: string
  - token: string

Returns:
  - error: Storage failures
*/
func (service *Service) Logout(context context.Context, email, token string) error {
	context, span := service.tracer.Start(context, "auth.Logout")
	defer span.End()

	logger := ctxutil.GetLogger(context)

	deleted, err := service.sessionRepository.DeleteByToken(context, email, token)
	if err != nil {
		service.recorder.Logoff(metrics.ResultError)
		return fail(span, fmt.Errorf("auth_service_logout_failed: %w", err))
	}

	if !deleted {
		logger.InfoContext(context, "logoff_session_already_gone")
	}

	service.recorder.Logoff(metrics.ResultSuccess)
	logger.InfoContext(context, "logoff_succeeded", slog.Bool("session_deleted", deleted))

	return nil
}

// refuse tags span with the rejection reason and marks it failed.
func refuse(span trace.Span, reason string, err error) error {
	span.SetAttributes(attribute.String(attributeRejectReason, reason))
	span.SetStatus(codes.Error, err.Error())
	return err
}

// fail records err on span, marks it failed and returns err.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
