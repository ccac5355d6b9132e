// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/relatolabs/relato/internal/platform/apperr"
)

// accountColumns is the projection shared by every account lookup.
const accountColumns = "id, name, email, passwordhash, role, isverified, createdat, updatedat"

// PostgresUserRepository backs [UserRepository] with the users.account table.
// pgx.ErrNoRows is translated to apperr here so callers never see pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("pg_account_insert: %w", err)
	}

	return nil
}

// FindByEmail resolves a login email. Soft-deleted accounts are invisible,
// so a re-registered email behaves like a fresh signup.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users.account
		WHERE email = $1 AND deletedat IS NULL`

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundMessage("User not found with this email")
		}
		return nil, fmt.Errorf("pg_account_by_email: %w", err)
	}

	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users.account
		WHERE id = $1 AND deletedat IS NULL`

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("pg_account_by_id: %w", err)
	}

	return user, nil
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	const query = `
		UPDATE users.account
		SET passwordhash = $2, updatedat = $3
		WHERE id = $1 AND deletedat IS NULL`

	if _, err := repository.pool.Exec(context, query, userID, newHash, time.Now()); err != nil {
		return fmt.Errorf("pg_account_update_password: %w", err)
	}
	return nil
}

func (repository *PostgresUserRepository) MarkVerified(context context.Context, userID string) error {
	const query = "UPDATE users.account SET isverified = TRUE, updatedat = $2 WHERE id = $1"

	if _, err := repository.pool.Exec(context, query, userID, time.Now()); err != nil {
		return fmt.Errorf("pg_account_mark_verified: %w", err)
	}
	return nil
}

// sessionColumns is the projection shared by session reads and writes.
const sessionColumns = "id, userid, tokenhash, useragent, ipaddress, expiresat, isrevoked, createdat"

// PostgresSessionRepository backs [SessionRepository] with users.session.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	const query = `
		INSERT INTO users.session (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
		session.IsRevoked,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("pg_session_insert: %w", err)
	}

	return nil
}

// FindByTokenHash only matches live sessions: the revocation and expiry
// filters sit in the query so a rotated token can never resolve again.
func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM users.session
		WHERE tokenhash = $1 AND isrevoked = FALSE AND expiresat > NOW()`

	session := &Session{}
	err := repository.pool.QueryRow(context, query, tokenHash).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.IsRevoked,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundMessage("Session not found or expired")
		}
		return nil, fmt.Errorf("pg_session_by_hash: %w", err)
	}

	return session, nil
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	const query = "UPDATE users.session SET isrevoked = TRUE, revokedat = NOW() WHERE id = $1"

	if _, err := repository.pool.Exec(context, query, sessionID); err != nil {
		return fmt.Errorf("pg_session_revoke: %w", err)
	}
	return nil
}

func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	const query = "UPDATE users.session SET isrevoked = TRUE, revokedat = NOW() WHERE userid = $1 AND isrevoked = FALSE"

	if _, err := repository.pool.Exec(context, query, userID); err != nil {
		return fmt.Errorf("pg_session_revoke_all: %w", err)
	}
	return nil
}

func (repository *PostgresSessionRepository) RevokeOthers(context context.Context, userID, currentSessionID string) error {
	const query = "UPDATE users.session SET isrevoked = TRUE, revokedat = NOW() WHERE userid = $1 AND id != $2 AND isrevoked = FALSE"

	if _, err := repository.pool.Exec(context, query, userID, currentSessionID); err != nil {
		return fmt.Errorf("pg_session_revoke_others: %w", err)
	}
	return nil
}

// DeleteExpired reclaims rows past their expiry, revoked or not. Meant for
// a periodic job, not the request path.
func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	const query = "DELETE FROM users.session WHERE expiresat <= NOW()"

	if _, err := repository.pool.Exec(context, query); err != nil {
		return fmt.Errorf("pg_session_delete_expired: %w", err)
	}
	return nil
}
