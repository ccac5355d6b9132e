// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relatolabs/relato/internal/platform/ctxutil"
	"github.com/relatolabs/relato/internal/platform/sec"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

func TestRequestID_EmptyWithoutMiddleware(t *testing.T) {
	assert.Empty(t, ctxutil.GetRequestID(context.Background()))
}

func TestLogger_RoundTrip(t *testing.T) {
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, ctxutil.GetLogger(ctx))
}

func TestLogger_FallsBackToDefault(t *testing.T) {
	// A bare context must still yield a usable logger.
	logger := ctxutil.GetLogger(context.Background())
	assert.NotNil(t, logger)
	assert.Same(t, slog.Default(), logger)
}

func TestAuthUser_RoundTrip(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "u-1", Name: "Ada", Role: "member"}
	ctx := ctxutil.WithAuthUser(context.Background(), claims)
	assert.Same(t, claims, ctxutil.GetAuthUser(ctx))
}

func TestAuthUser_NilForAnonymous(t *testing.T) {
	assert.Nil(t, ctxutil.GetAuthUser(context.Background()))
}

func TestLocale_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithLocale(context.Background(), "vi")
	assert.Equal(t, "vi", ctxutil.GetLocale(ctx))
}

func TestLocale_EmptyWhenNotNegotiated(t *testing.T) {
	assert.Empty(t, ctxutil.GetLocale(context.Background()))
}
