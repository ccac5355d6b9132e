// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package constants collects the shared fixed values: server timing, rate
// limits, header and field names, cookie settings, Redis key prefixes.
// Anything two packages both need to agree on lives here.
package constants

import "time"

// Server timing.
const (
	// DefaultReadTimeout bounds reading one whole request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout bounds writing one whole response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is how long a keep-alive connection may sit idle.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout bounds the header-read phase on its own,
	// which blunts slow-header connection exhaustion.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout caps a request end to end. The database
	// statement timeout is derived from it.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests once a
	// stop signal arrives.
	ShutdownTimeout = 30 * time.Second
)

// Rate limiting.
const (
	// DefaultRateLimitRPS is the sustained per-IP request rate.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the bucket depth above the sustained rate.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is the janitor's sweep period.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long an IP may stay idle before its
	// bucket is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// HTTP header names used across middleware.
const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderAcceptLanguage = "Accept-Language"
)

// Authentication.
const (
	// AuthIssuer is the iss claim stamped into every access token.
	AuthIssuer = "relato.app"

	// RefreshTokenCookieName holds the opaque refresh token client-side.
	RefreshTokenCookieName = "refresh_token"

	// RefreshTokenCookiePath scopes the cookie to the auth routes so it
	// never rides along on content requests.
	RefreshTokenCookiePath = "/api/v1/auth"
)

// JSON field names shared between handlers and the respond envelope.
const (
	FieldMeta  = "meta"
	FieldLinks = "links"
	FieldItems = "items"
	FieldPost  = "post"
	FieldPosts = "posts"
)

// Redis key prefixes for the one-shot token stores.
const (
	RedisPrefixResetToken  = "auth:reset_token:"
	RedisPrefixVerifyToken = "auth:verify_token:"
)
