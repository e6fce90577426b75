// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
	"github.com/taibuivan/toolshelf/internal/platform/constants"
	requestutil "github.com/taibuivan/toolshelf/internal/platform/request"
	"github.com/taibuivan/toolshelf/internal/platform/respond"
	"github.com/taibuivan/toolshelf/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the signup, login and logoff HTTP endpoints.
type Handler struct {
	authService   *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler].
//
// secureCookies sets the Secure attribute on the access token cookie; it is
// enabled in production only.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// Register mounts the authentication routes on router.
//
// # Endpoints
//   - POST   /signin : Creates a new account.
//   - POST   /login  : Authenticates and sets the access token cookie.
//   - DELETE /logoff : Revokes the session and clears the cookie (gated).
func (handler *Handler) Register(router chi.Router) {
	router.Post("/signin", handler.signin)
	router.Post("/login", handler.login)
	router.With(Gate(handler.authService)).Delete("/logoff", handler.logoff)
}

// # Request Payloads

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Signin handles the creation of a new user account.

POST /signin

Request:
  - Body: credentialsRequest (Email, Password)

Response:
  - 201: StatusEnvelope: "User created successfully"
  - 400: Missing fields, bad email, short password or malformed JSON
  - 409: ErrEmailExists
*/
func (handler *Handler) signin(writer http.ResponseWriter, request *http.Request) {
	var input credentialsRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		if errors.Is(err, requestutil.ErrEmptyBody) {
			respond.Error(writer, request, ErrMissingFields)
			return
		}
		respond.Error(writer, request, ErrInvalidJSON)
		return
	}

	if _, err := handler.authService.Register(request.Context(), Credentials(input)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusCreated, "User created successfully")
}

/*
Login authenticates a user and establishes a session.

POST /login

Request:
  - Header: Content-Type (required)
  - Body: credentialsRequest (Email, Password)

Response:
  - 200: { success: true } with the access_token cookie
  - 400: Missing Content-Type or invalid body
  - 401: ErrInvalidCredentials
  - 404: ErrUserNotFound
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	if request.Header.Get(constants.HeaderContentType) == "" {
		respond.Error(writer, request, ErrMissingContentType)
		return
	}

	var input credentialsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, ErrInvalidLoginBody)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength)

	if err := validator.Err(); err != nil {
		var details []apperr.FieldError
		if appError := apperr.As(err); appError != nil {
			details = appError.Details
		}
		respond.Error(writer, request, apperr.ValidationError(ErrInvalidLoginBody.Message, details...))
		return
	}

	result, err := handler.authService.Login(request.Context(), Credentials(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setAccessTokenCookie(writer, result.Token, handler.secureCookies)
	respond.JSON(writer, http.StatusOK, respond.StatusEnvelope{Success: true})
}

/*
Logoff revokes the caller's session.

DELETE /logoff

Description: Runs behind [Gate]. The cookie is cleared before any outcome is
written so the client always drops the token.

Response:
  - 200: "Session deleted, token removed"
  - 401: Missing token or claims
  - 500: Storage failure
*/
func (handler *Handler) logoff(writer http.ResponseWriter, request *http.Request) {
	token := tokenFromRequest(request)
	claims := requestutil.Claims(request)

	clearAccessTokenCookie(writer, handler.secureCookies)

	if token == "" || claims == nil {
		respond.Structured(writer, request, ErrTokenNotFound)
		return
	}

	if err := handler.authService.Logout(request.Context(), claims.Email, token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, http.StatusOK, "Session deleted, token removed")
}
