// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/toolshelf/internal/platform/constants"
	"github.com/taibuivan/toolshelf/internal/platform/ctxutil"
)

type harness struct {
	*fixture
	router chi.Router
}

func newHarness(t *testing.T, secureCookies bool) *harness {
	t.Helper()

	f := newFixture(t)
	router := chi.NewRouter()
	NewHandler(f.service, secureCookies).Register(router)

	// A protected probe route standing in for the resource handlers.
	router.With(Gate(f.service)).Get("/tools", func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(claims.Email))
	})

	return &harness{fixture: f, router: router}
}

func (h *harness) do(method, path, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, path, nil)
	} else {
		request = httptest.NewRequest(method, path, strings.NewReader(body))
		request.Header.Set(constants.HeaderContentType, "application/json")
	}
	if mutate != nil {
		mutate(request)
	}

	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, request)
	return recorder
}

func withCookie(value string) func(*http.Request) {
	return func(request *http.Request) {
		request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: value})
	}
}

func accessCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.AccessTokenCookieName {
			return cookie
		}
	}
	t.Fatalf("response carries no %s cookie", constants.AccessTokenCookieName)
	return nil
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

const existingUser = `{"email":"existing@example.com","password":"password123"}`

/*
TestSignin_CreatedThenConflict registers the same email twice.
*/
func TestSignin_CreatedThenConflict(t *testing.T) {
	h := newHarness(t, false)

	first := h.do(http.MethodPost, "/signin", existingUser, nil)
	assert.Equal(t, http.StatusCreated, first.Code)
	body := decodeBody(t, first)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotContains(t, first.Body.String(), "password123")

	second := h.do(http.MethodPost, "/signin", existingUser, nil)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "User with this email already exists", decodeBody(t, second)["error"])
}

func TestSignin_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"no_body", "", "Email and password are required"},
		{"empty_object", `{}`, "Email and password are required"},
		{"null_email", `{"email":null,"password":"password123"}`, "Email and password are required"},
		{"bad_email", `{"email":"invalidemail","password":"validPassword123"}`, "Invalid email format"},
		{"short_password", `{"email":"test@example.com","password":"12345"}`, "Password must be at least 6 characters long"},
		{"malformed_json", `Invalid JSON`, "Invalid JSON payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, false)
			recorder := h.do(http.MethodPost, "/signin", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, recorder)["error"])
		})
	}
}

/*
TestLogin_SetsCookie checks the cookie attributes outside production.
*/
func TestLogin_SetsCookie(t *testing.T) {
	h := newHarness(t, false)
	require.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/signin", existingUser, nil).Code)

	recorder := h.do(http.MethodPost, "/login", existingUser, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, decodeBody(t, recorder)["success"])

	cookie := accessCookie(t, recorder)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)

	claims, err := h.tokens.VerifyToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "existing@example.com", claims.Email)
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	h := newHarness(t, true)
	require.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/signin", existingUser, nil).Code)

	recorder := h.do(http.MethodPost, "/login", existingUser, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, accessCookie(t, recorder).Secure)
	assert.Contains(t, recorder.Header().Get("Set-Cookie"), "Secure")
}

/*
TestLogin_Errors maps each failure to its status and message.
*/
func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mutate     func(*http.Request)
		wantStatus int
		wantMsg    string
	}{
		{"short_password", `{"email":"x@example.com","password":"short"}`, nil, http.StatusBadRequest, "Invalid request body"},
		{"missing_password", `{"email":"existing@example.com"}`, nil, http.StatusBadRequest, "Invalid request body"},
		{"empty_object", `{}`, nil, http.StatusBadRequest, "Invalid request body"},
		{"wrong_types", `{"email":12345,"password":{}}`, nil, http.StatusBadRequest, "Invalid request body"},
		{"unknown_email", `{"email":"nonexistent@example.com","password":"password123"}`, nil, http.StatusNotFound, "User not found"},
		{"wrong_password", `{"email":"existing@example.com","password":"wrongpassword"}`, nil, http.StatusUnauthorized, "Invalid credentials"},
		{
			"no_content_type", existingUser,
			func(request *http.Request) { request.Header.Del(constants.HeaderContentType) },
			http.StatusBadRequest, "The content type for the request must be specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, false)
			require.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/signin", existingUser, nil).Code)

			recorder := h.do(http.MethodPost, "/login", tt.body, tt.mutate)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, recorder)["error"])
			assert.Empty(t, recorder.Result().Cookies())
		})
	}
}

func TestLogin_ValidationDetails(t *testing.T) {
	h := newHarness(t, false)

	recorder := h.do(http.MethodPost, "/login", `{"email":"not-an-email","password":"123"}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	details, ok := decodeBody(t, recorder)["details"].([]any)
	require.True(t, ok)
	assert.Len(t, details, 2)
}

/*
TestLogin_EmptyFieldsReportOnce checks that an empty field yields a single
"required" detail instead of one per rule.
*/
func TestLogin_EmptyFieldsReportOnce(t *testing.T) {
	h := newHarness(t, false)

	recorder := h.do(http.MethodPost, "/login", `{"email":"","password":""}`, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	details, ok := decodeBody(t, recorder)["details"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{
		map[string]any{"field": "email", "message": "This field is required"},
		map[string]any{"field": "password", "message": "This field is required"},
	}, details)
}

/*
TestGate_NoCookie rejects a protected GET with the structured envelope.
*/
func TestGate_NoCookie(t *testing.T) {
	h := newHarness(t, false)

	recorder := h.do(http.MethodGet, "/tools", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "401", body["error"]["code"])
	assert.Equal(t, "Token not found", body["error"]["message"])
	assert.Equal(t, "The access token is not set or expired", body["error"]["details"])
}

func TestGate_BadToken(t *testing.T) {
	h := newHarness(t, false)

	recorder := h.do(http.MethodGet, "/tools", "", withCookie("garbage"))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}

func TestGate_StorageFailureIs500(t *testing.T) {
	h := newHarness(t, false)
	issued, err := h.tokens.IssueAccessToken("user-1", "a@example.com")
	require.NoError(t, err)
	h.sessions.err = errStorageDown

	recorder := h.do(http.MethodGet, "/tools", "", withCookie(issued.Value))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}

/*
TestFlow_LoginAccessSupersedeLogoff runs the whole session lifecycle over HTTP.
*/
func TestFlow_LoginAccessSupersedeLogoff(t *testing.T) {
	h := newHarness(t, false)
	require.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/signin", existingUser, nil).Code)

	firstToken := accessCookie(t, h.do(http.MethodPost, "/login", existingUser, nil)).Value

	protected := h.do(http.MethodGet, "/tools", "", withCookie(firstToken))
	require.Equal(t, http.StatusOK, protected.Code)
	assert.Equal(t, "existing@example.com", protected.Body.String())

	// A second login supersedes the first token.
	secondToken := accessCookie(t, h.do(http.MethodPost, "/login", existingUser, nil)).Value
	stale := h.do(http.MethodGet, "/tools", "", withCookie(firstToken))
	assert.Equal(t, http.StatusUnauthorized, stale.Code)
	assert.Contains(t, stale.Body.String(), "User integrity conflict")

	// Logoff revokes the live token and clears the cookie.
	logoff := h.do(http.MethodDelete, "/logoff", "", withCookie(secondToken))
	require.Equal(t, http.StatusOK, logoff.Code)
	body := decodeBody(t, logoff)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Session deleted, token removed", body["message"])

	cleared := accessCookie(t, logoff)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	after := h.do(http.MethodGet, "/tools", "", withCookie(secondToken))
	assert.Equal(t, http.StatusUnauthorized, after.Code)
	assert.Contains(t, after.Body.String(), "User integrity conflict")
}

func TestLogoff_RequiresGate(t *testing.T) {
	h := newHarness(t, false)

	recorder := h.do(http.MethodDelete, "/logoff", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Zero(t, h.sessions.count())
}

func TestLogoff_StorageFailureStillClearsCookie(t *testing.T) {
	h := newHarness(t, false)
	require.Equal(t, http.StatusCreated, h.do(http.MethodPost, "/signin", existingUser, nil).Code)
	token := accessCookie(t, h.do(http.MethodPost, "/login", existingUser, nil)).Value

	failing := &failingDelete{memorySessions: h.sessions}
	h.service.sessionRepository = failing

	recorder := h.do(http.MethodDelete, "/logoff", "", withCookie(token))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Empty(t, accessCookie(t, recorder).Value)
}

// failingDelete passes the gate but fails the deletion itself.
type failingDelete struct {
	*memorySessions
}

func (store *failingDelete) DeleteByToken(_ context.Context, _, _ string) (bool, error) {
	return false, errStorageDown
}
