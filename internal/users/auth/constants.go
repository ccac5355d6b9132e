// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package auth

import "time"

// Token lifetimes and sizes. The access token stays short-lived; the
// refresh token carries the long session and can be revoked per device.
const (
	// AccessTokenTTL caps how long a stolen access token is worth anything.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the session length before a user must log in again.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the random-byte count behind a refresh token.
	RefreshTokenLength = 32

	// ResetTokenTTL keeps password-reset links usable for one hour.
	ResetTokenTTL = 1 * time.Hour

	ResetTokenLength = 32

	// VerificationTokenTTL gives a day to click the verification email.
	VerificationTokenTTL = 24 * time.Hour

	VerificationTokenLength = 32
)
