// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

/*
Package apperr is the error vocabulary shared by every layer of the API.

A service or store that fails hands back an *AppError carrying the HTTP
status the failure maps to, a stable machine code, and a message safe to
put in the response body. The respond package renders it; nothing between
the failure site and the response needs to inspect it.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the one error type that crosses layer boundaries.
//
// Cause never reaches the client; it exists so the 500 path can log the
// real failure while the body stays generic.
type AppError struct {
	// Code is the stable machine identifier, e.g. "NOT_FOUND".
	Code string `json:"code"`
	// Message is safe to show to API consumers verbatim.
	Message string `json:"message"`
	// HTTPStatus picks the response status.
	HTTPStatus int `json:"-"`
	// Cause is kept for server logs only.
	Cause error `json:"-"`
	// Details lists per-field failures on validation errors.
	Details []FieldError `json:"errors,omitempty"`
}

// FieldError names one input field that failed and why.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

// Unwrap lets errors.Is and errors.As walk through to the cause.
func (e *AppError) Unwrap() error { return e.Cause }

func newError(code string, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// NotFound builds the 404 for a named entity: NotFound("Post") reads
// "Post not found" on the wire.
func NotFound(resource string) *AppError {
	return newError("NOT_FOUND", http.StatusNotFound, resource+" not found")
}

// NotFoundMessage builds a 404 whose message is used verbatim, for the
// cases where the fixed suffix of [NotFound] reads wrong, e.g. "Reset
// token is invalid or expired".
func NotFoundMessage(msg string) *AppError {
	return newError("NOT_FOUND", http.StatusNotFound, msg)
}

func Unauthorized(msg string) *AppError {
	return newError("UNAUTHORIZED", http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return newError("FORBIDDEN", http.StatusForbidden, msg)
}

// Conflict is the 409 for duplicates and unique-constraint violations.
func Conflict(msg string) *AppError {
	return newError("CONFLICT", http.StatusConflict, msg)
}

// ValidationError is the 422 carrying the failed fields in Details.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := newError("VALIDATION_ERROR", http.StatusUnprocessableEntity, msg)
	err.Details = details
	return err
}

func RateLimited(retryAfterSeconds int) *AppError {
	return newError("RATE_LIMITED", http.StatusTooManyRequests,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// Internal wraps an unexpected failure. The cause is logged server-side;
// the client only ever sees the generic message.
func Internal(cause error) *AppError {
	err := newError("INTERNAL_ERROR", http.StatusInternalServerError, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// As pulls the *AppError out of an error chain, nil when there is none.
func As(err error) *AppError {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError
	}
	return nil
}
