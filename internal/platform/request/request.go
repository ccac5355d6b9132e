// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package request has the handler-side helpers for pulling data off an
// incoming request: body decoding, route parameters, and auth claims.
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/ctxutil"
	"github.com/relatolabs/relato/internal/platform/sec"
	"github.com/relatolabs/relato/internal/platform/validate"
)

// DecodeJSON fills target from the body. Any decode failure collapses to
// validate.ErrInvalidJSON; clients get one consistent 422 for bad bodies.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param reads a named chi route parameter.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// RequiredClaims returns the caller's verified claims, or Unauthorized for
// anonymous requests.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
