// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package auth

import (
	"context"
	"time"
)

// UserRepository is the persistence contract for accounts. Lookups never
// return soft-deleted rows.
type UserRepository interface {
	FindByID(context context.Context, id string) (*User, error)
	FindByEmail(context context.Context, email string) (*User, error)
	Create(context context.Context, user *User) error

	// UpdatePassword swaps the stored hash; nothing else on the row moves.
	UpdatePassword(context context.Context, userID, newHash string) error
	MarkVerified(context context.Context, userID string) error
}

// SessionRepository tracks refresh-token sessions, one row per device.
type SessionRepository interface {
	Create(context context.Context, session *Session) error

	// FindByTokenHash resolves a live session only: revoked and expired
	// rows are invisible through this lookup.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	Revoke(context context.Context, sessionID string) error
	RevokeAll(context context.Context, userID string) error
	RevokeOthers(context context.Context, userID, currentSessionID string) error

	// DeleteExpired is housekeeping for rows past their ExpiresAt; revoked
	// rows are kept for audit until they expire too.
	DeleteExpired(context context.Context) error
}

// TokenStore holds single-use tokens (password reset, email verification)
// keyed to a user id, with expiry enforced by the store itself.
type TokenStore interface {
	Set(context context.Context, token string, userID string, ttl time.Duration) error
	Get(context context.Context, token string) (string, error)
	Delete(context context.Context, token string) error
}
