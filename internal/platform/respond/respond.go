// Copyright (c) 2026 Toolshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// It ensures that every response (Success or Error) across the entire application
// follows a strict, predictable JSON envelope structure.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taibuivan/toolshelf/internal/platform/apperr"
	"github.com/taibuivan/toolshelf/internal/platform/ctxutil"
	"github.com/taibuivan/toolshelf/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for successful single-resource responses.
type SuccessEnvelope struct {
	Data interface{} `json:"data"`
}

// PaginatedEnvelope is the JSON envelope for paginated list responses.
type PaginatedEnvelope struct {
	Data interface{}     `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
	// Debug carries the internal cause of a 5xx outside production only.
	Debug string `json:"debug,omitempty"`
}

// StructuredError is the nested error object used by the auth gate.
type StructuredError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// StructuredEnvelope is the JSON envelope `{ "error": { code, message, details } }`.
type StructuredEnvelope struct {
	Error StructuredError `json:"error"`
}

// StatusEnvelope is the JSON envelope for action endpoints (login, logoff, signup).
type StatusEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusCreated, SuccessEnvelope{Data: data})
}

// Paginated writes a 200 OK response with paginated data and a metadata block.
func Paginated(writer http.ResponseWriter, data interface{}, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, PaginatedEnvelope{Data: data, Meta: metadata})
}

// Success writes `{ "success": true, "message": ... }` with the given status.
func Success(writer http.ResponseWriter, statusCode int, message string) {
	JSON(writer, statusCode, StatusEnvelope{Success: true, Message: message})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := resolve(request, err)

	envelope := ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	}

	if appError.HTTPStatus >= 500 && appError.Cause != nil && ctxutil.VerboseErrors(request.Context()) {
		envelope.Debug = appError.Cause.Error()
	}

	JSON(writer, appError.HTTPStatus, envelope)
}

// Structured writes an error using the nested `{ error: { code, message, details } }`
// envelope. The code is the numeric HTTP status rendered as a string.
func Structured(writer http.ResponseWriter, request *http.Request, err error) {
	appError := resolve(request, err)

	details := appError.Reason
	if details == "" {
		details = appError.Message
	}

	JSON(writer, appError.HTTPStatus, StructuredEnvelope{Error: StructuredError{
		Code:    strconv.Itoa(appError.HTTPStatus),
		Message: appError.Message,
		Details: details,
	}})
}

// resolve maps err onto an [*apperr.AppError] and logs server-side failures.
func resolve(request *http.Request, err error) *apperr.AppError {
	logger := ctxutil.GetLogger(request.Context())
	requestID := ctxutil.GetRequestID(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", requestID),
			slog.Any("cause", appError.Cause),
		)
	}

	return appError
}
