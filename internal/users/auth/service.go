// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

/*
Package auth covers account identity for the API: registration, login,
refresh-token sessions, email verification and password recovery.

Access tokens are short-lived RSA-signed JWTs; refresh tokens are opaque
random strings tracked per device in Postgres (hashed, never raw). Reset
and verification tokens live in Redis with their TTL enforced there.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/sec"
	"github.com/relatolabs/relato/pkg/uuidv7"
)

// TokenProvider issues signed access tokens. Satisfied by [sec.TokenService].
type TokenProvider interface {
	GenerateAccessToken(userID, name, role string, timeToLive time.Duration) (string, error)
}

// Service implements the account use cases. All credential checks funnel
// through here; handlers never touch hashes or raw tokens directly.
type Service struct {
	users         UserRepository
	sessions      SessionRepository
	resetTokens   TokenStore
	verifyTokens  TokenStore
	tokenProvider TokenProvider
}

// NewService wires the account use cases to their stores.
func NewService(
	users UserRepository,
	sessions SessionRepository,
	resetTokens TokenStore,
	verifyTokens TokenStore,
	tokenProvider TokenProvider,
) *Service {
	return &Service{
		users:         users,
		sessions:      sessions,
		resetTokens:   resetTokens,
		verifyTokens:  verifyTokens,
		tokenProvider: tokenProvider,
	}
}

// RegisterInput carries the signup form fields, already validated.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register creates an unverified account and parks a verification token in
Redis for the confirmation email.

Description: The account cannot log in until VerifyEmail consumes that
token. A taken email answers with Conflict before any hashing work.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: the stored account
  - err: Conflict on a duplicate email, otherwise storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	if _, err := service.users.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_register_hash: %w", err)
	}

	user := &User{
		// uuidv7 keeps inserts append-ordered on the primary key index.
		ID:           uuidv7.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         sec.RoleMember,
		IsVerified:   false,
	}
	if err := service.users.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_register_create: %w", err)
	}

	// A failed token write only delays verification; the account stands.
	// TODO: hand the token to the mailer once the email worker lands.
	if token, err := sec.GenerateSecureToken(VerificationTokenLength); err == nil {
		_ = service.verifyTokens.Set(context, token, user.ID, VerificationTokenTTL)
	}

	return user, nil
}

// LoginInput carries one authentication attempt plus its device metadata.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession is what a successful login or refresh hands back to transport.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login checks credentials and opens a tracked session.

Description: Unknown emails and wrong passwords produce the same
Unauthorized message so the endpoint cannot be used to probe which
addresses exist. A correct password on an unverified account is
Forbidden, not Unauthorized: the caller proved identity but the account
is not yet usable.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: token pair plus the account
  - err: Unauthorized, Forbidden, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.users.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}
	if !user.IsVerified {
		return nil, apperr.Forbidden("Email address is not verified")
	}

	return service.issueSession(context, user, input.UserAgent, input.IPAddress)
}

/*
RefreshSession rotates a refresh token for a new token pair.

Description: The presented token is revoked before its replacement is
issued, so a replayed token fails on the revocation check. Expired,
revoked and unknown tokens are indistinguishable to the caller.

Parameters:
  - context: context.Context
  - refreshToken: string
  - userAgent: string
  - ipAddress: string

Returns:
  - *LoginSession: the rotated pair
  - err: Unauthorized or internal failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: the old session dies before the new one exists.
	if err := service.sessions.Revoke(context, session.ID); err != nil {
		return nil, fmt.Errorf("auth_refresh_revoke: %w", err)
	}

	user, err := service.users.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found or suspended")
	}

	return service.issueSession(context, user, userAgent, ipAddress)
}

// issueSession mints an access token, an opaque refresh token and the row
// that tracks it. Shared by Login and RefreshSession.
func (service *Service) issueSession(context context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Name, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_issue_access_token: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_issue_refresh_token: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuidv7.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
	}
	if err := service.sessions.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_issue_session_create: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}

// Logout revokes the session behind a refresh token. Tokens that resolve
// to nothing are treated as already logged out.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil
	}
	if err := service.sessions.Revoke(context, session.ID); err != nil {
		return fmt.Errorf("auth_logout_revoke: %w", err)
	}
	return nil
}

/*
RequestPasswordReset starts the forgot-password flow.

Description: For a known email it stores a single-use token in Redis and
returns it for delivery. An unknown email returns empty with no error,
keeping the endpoint's responses identical either way.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - string: the reset token, empty for unknown emails
  - err: token generation or storage failures
*/
func (service *Service) RequestPasswordReset(context context.Context, email string) (string, error) {
	user, err := service.users.FindByEmail(context, email)
	if err != nil {
		return "", nil
	}

	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return "", fmt.Errorf("auth_reset_request_token: %w", err)
	}
	if err := service.resetTokens.Set(context, token, user.ID, ResetTokenTTL); err != nil {
		return "", fmt.Errorf("auth_reset_request_store: %w", err)
	}

	return token, nil
}

/*
ResetPassword finishes the forgot-password flow.

Description: Consumes the reset token, writes the new hash, and revokes
every live session for the account. Whoever triggered the reset has to
log in again everywhere.

Parameters:
  - context: context.Context
  - token: string
  - newPassword: string

Returns:
  - err: NotFound for a dead token, otherwise storage failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {
	userID, err := service.resetTokens.Get(context, token)
	if err != nil {
		return err
	}

	passwordHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_reset_hash: %w", err)
	}
	if err := service.users.UpdatePassword(context, userID, passwordHash); err != nil {
		return fmt.Errorf("auth_reset_update: %w", err)
	}

	_ = service.sessions.RevokeAll(context, userID)
	_ = service.resetTokens.Delete(context, token)

	return nil
}

/*
ChangePassword rotates an authenticated user's password.

Description: Requires the current password. Every session except the one
making the request is revoked, so a stolen password stops working on
other devices while the legitimate caller stays logged in.

Parameters:
  - context: context.Context
  - userID: string
  - currentPassword: string
  - newPassword: string
  - currentRefreshToken: string

Returns:
  - err: Unauthorized on a wrong current password, otherwise storage failures
*/
func (service *Service) ChangePassword(context context.Context, userID, currentPassword, newPassword, currentRefreshToken string) error {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return err
	}
	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	passwordHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_change_password_hash: %w", err)
	}
	if err := service.users.UpdatePassword(context, userID, passwordHash); err != nil {
		return fmt.Errorf("auth_change_password_update: %w", err)
	}

	if session, err := service.sessions.FindByTokenHash(context, sec.HashToken(currentRefreshToken)); err == nil {
		_ = service.sessions.RevokeOthers(context, userID, session.ID)
	}

	return nil
}

// VerifyEmail consumes a verification token and flips the account to
// verified. The token is single-use; a second attempt gets NotFound.
func (service *Service) VerifyEmail(context context.Context, token string) error {
	userID, err := service.verifyTokens.Get(context, token)
	if err != nil {
		return err
	}
	if err := service.users.MarkVerified(context, userID); err != nil {
		return fmt.Errorf("auth_verify_email_update: %w", err)
	}

	_ = service.verifyTokens.Delete(context, token)
	return nil
}

// GetUser returns the profile behind an authenticated user id.
func (service *Service) GetUser(context context.Context, userID string) (*User, error) {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}
