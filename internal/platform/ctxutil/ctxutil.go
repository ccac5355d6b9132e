// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package ctxutil wraps the typed context keys with accessors so call sites
// never deal with the ctxkey package or type assertions directly.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/relatolabs/relato/internal/platform/ctxkey"
	"github.com/relatolabs/relato/internal/platform/sec"
)

// WithRequestID attaches the correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the correlation id, empty when the middleware never
// ran (tests, background jobs).
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// WithLogger attaches the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request-scoped logger, falling back to the process
// default so callers never need a nil check.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// WithAuthUser attaches verified token claims.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser returns the caller's claims, nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// WithLocale attaches the negotiated response language.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLocale, locale)
}

// GetLocale returns the negotiated language, empty when negotiation never
// ran; the i18n bundle treats empty as its default locale.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(ctxkey.KeyLocale).(string)
	return locale
}
