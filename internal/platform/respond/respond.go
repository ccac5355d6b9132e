// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package respond is where every handler's output is shaped.
//
// All responses share one envelope: a success flag, a human-readable
// message, and either a data object or a machine-readable error code
// with optional per-field details. Handlers never call json.NewEncoder
// themselves, so the wire format cannot drift between endpoints.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/ctxutil"
)

// envelope is the wire shape of every API response.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Code    string              `json:"code,omitempty"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

// JSON serializes payload as-is with the given status code. The other
// helpers wrap it; handlers reach for it directly only when the
// envelope does not apply, such as the health endpoints.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Data writes a 200 with a message and a data object.
func Data(writer http.ResponseWriter, message string, data any) {
	JSON(writer, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// Success writes a 200 carrying only a confirmation message. Used by
// operations whose result is the side effect, like logout.
func Success(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusOK, envelope{Success: true, Message: message})
}

// Created writes a 201 with a message and the created resource.
func Created(writer http.ResponseWriter, message string, data any) {
	JSON(writer, http.StatusCreated, envelope{Success: true, Message: message, Data: data})
}

// Error turns any error into the JSON error envelope.
//
// An *apperr.AppError passes through with its own status and code.
// Anything else is logged with the request id and replaced by a
// generic 500 so internals never leak to the client. 5xx responses
// are always logged, whichever path produced them.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	requestContext := request.Context()

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		ctxutil.GetLogger(requestContext).ErrorContext(requestContext, "unhandled_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(requestContext)),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		ctxutil.GetLogger(requestContext).ErrorContext(requestContext, "server_error_response",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(requestContext)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, envelope{
		Success: false,
		Code:    appError.Code,
		Message: appError.Message,
		Errors:  appError.Details,
	})
}
