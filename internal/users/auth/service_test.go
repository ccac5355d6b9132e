// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package auth_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/sec"
	"github.com/relatolabs/relato/internal/users/auth"
)

// # Fakes

// fakeUserRepository keeps accounts in memory keyed by id and email.
type fakeUserRepository struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    map[string]*auth.User{},
		byEmail: map[string]*auth.User{},
	}
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	user, ok := f.byID[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.PasswordHash = newHash
	return nil
}

func (f *fakeUserRepository) MarkVerified(_ context.Context, userID string) error {
	user, ok := f.byID[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.IsVerified = true
	return nil
}

// fakeSessionRepository tracks sessions and revocations.
type fakeSessionRepository struct {
	sessions map[string]*auth.Session // keyed by token hash
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: map[string]*auth.Session{}}
}

func (f *fakeSessionRepository) Create(_ context.Context, session *auth.Session) error {
	f.sessions[session.TokenHash] = session
	return nil
}

func (f *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := f.sessions[tokenHash]
	if !ok || session.IsRevoked || session.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFoundMessage("Session not found or expired")
	}
	return session, nil
}

func (f *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	for _, session := range f.sessions {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range f.sessions {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) DeleteExpired(_ context.Context) error { return nil }

func (f *fakeSessionRepository) activeCount(userID string) int {
	count := 0
	for _, session := range f.sessions {
		if session.UserID == userID && !session.IsRevoked {
			count++
		}
	}
	return count
}

// fakeTokenStore is an in-memory TokenStore (TTL is accepted but not enforced).
type fakeTokenStore struct {
	values map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{values: map[string]string{}}
}

func (f *fakeTokenStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.values[token] = userID
	return nil
}

func (f *fakeTokenStore) Get(_ context.Context, token string) (string, error) {
	userID, ok := f.values[token]
	if !ok {
		return "", apperr.NotFoundMessage("Token is invalid or expired")
	}
	return userID, nil
}

func (f *fakeTokenStore) Delete(_ context.Context, token string) error {
	delete(f.values, token)
	return nil
}

// fakeTokenProvider emits deterministic access tokens.
type fakeTokenProvider struct {
	issued int
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	f.issued++
	return fmt.Sprintf("access-%s-%d", userID, f.issued), nil
}

// # Harness

type harness struct {
	service      *auth.Service
	users        *fakeUserRepository
	sessions     *fakeSessionRepository
	resetTokens  *fakeTokenStore
	verifyTokens *fakeTokenStore
}

func newHarness() *harness {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	resetTokens := newFakeTokenStore()
	verifyTokens := newFakeTokenStore()

	return &harness{
		service:      auth.NewService(users, sessions, resetTokens, verifyTokens, &fakeTokenProvider{}),
		users:        users,
		sessions:     sessions,
		resetTokens:  resetTokens,
		verifyTokens: verifyTokens,
	}
}

// seedUser registers and verifies an account so it can log in.
func (h *harness) seedUser(t *testing.T, email, password string) *auth.User {
	t.Helper()

	user, err := h.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Ada Lovelace",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	require.NoError(t, h.users.MarkVerified(context.Background(), user.ID))
	return user
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	return appErr.HTTPStatus
}

// # Registration

func TestService_Register(t *testing.T) {
	h := newHarness()

	user, err := h.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.False(t, user.IsVerified)

	// The password must never be stored in plain text.
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", user.PasswordHash))

	// A verification token should be waiting in the store.
	assert.Len(t, h.verifyTokens.values, 1)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "grace@example.com", "correct horse battery")

	_, err := h.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Impostor",
		Email:    "grace@example.com",
		Password: "something else",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

// # Login

func TestService_Login(t *testing.T) {
	h := newHarness()
	user := h.seedUser(t, "grace@example.com", "correct horse battery")

	session, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, user.ID, session.User.ID)

	// Only the hash of the refresh token is persisted.
	stored, err := h.sessions.FindByTokenHash(context.Background(), sec.HashToken(session.RefreshToken))
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, stored.TokenHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "grace@example.com", "correct horse battery")

	_, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestService_Login_UnknownEmail(t *testing.T) {
	h := newHarness()

	_, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	// The message must not reveal whether the account exists.
	assert.Equal(t, "Invalid login credentials", err.Error())
}

func TestService_Login_UnverifiedEmail(t *testing.T) {
	h := newHarness()

	_, err := h.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "correct horse battery",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

// # Session Lifecycle

func TestService_RefreshSession_Rotation(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "grace@example.com", "correct horse battery")

	first, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	second, err := h.service.RefreshSession(context.Background(), first.RefreshToken, "ua", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-out token must be dead: replaying it is Unauthorized.
	_, err = h.service.RefreshSession(context.Background(), first.RefreshToken, "ua", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestService_Logout_Idempotent(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "grace@example.com", "correct horse battery")

	session, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	require.NoError(t, h.service.Logout(context.Background(), session.RefreshToken))

	// A second logout with the same (now revoked) token still succeeds.
	require.NoError(t, h.service.Logout(context.Background(), session.RefreshToken))

	// And the token can no longer refresh.
	_, err = h.service.RefreshSession(context.Background(), session.RefreshToken, "ua", "127.0.0.1")
	require.Error(t, err)
}

// # Password Recovery

func TestService_PasswordResetFlow(t *testing.T) {
	h := newHarness()
	user := h.seedUser(t, "grace@example.com", "old password 123")

	// Establish a session that the reset must kill.
	_, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "old password 123",
	})
	require.NoError(t, err)

	token, err := h.service.RequestPasswordReset(context.Background(), "grace@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, h.service.ResetPassword(context.Background(), token, "new password 456"))

	// Old credentials are gone, new ones work.
	_, err = h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "old password 123",
	})
	require.Error(t, err)

	_, err = h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "new password 456",
	})
	require.NoError(t, err)

	// Every pre-reset session was revoked; only the fresh login survives.
	assert.Equal(t, 1, h.sessions.activeCount(user.ID))

	// The token is single-use, and the error message reaches the wire
	// as written, without a constructor-appended suffix.
	err = h.service.ResetPassword(context.Background(), token, "another one")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "Token is invalid or expired", appError.Message)
}

func TestService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	h := newHarness()

	// Unknown emails return silently to prevent account enumeration.
	token, err := h.service.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, h.resetTokens.values)
}

func TestService_ChangePassword(t *testing.T) {
	h := newHarness()
	user := h.seedUser(t, "grace@example.com", "old password 123")

	// Two devices logged in.
	current, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "old password 123",
	})
	require.NoError(t, err)

	_, err = h.service.Login(context.Background(), auth.LoginInput{
		Email:    "grace@example.com",
		Password: "old password 123",
	})
	require.NoError(t, err)

	err = h.service.ChangePassword(
		context.Background(),
		user.ID,
		"old password 123",
		"new password 456",
		current.RefreshToken,
	)
	require.NoError(t, err)

	// The initiating session stays alive; the other device is logged out.
	assert.Equal(t, 1, h.sessions.activeCount(user.ID))
	_, err = h.service.RefreshSession(context.Background(), current.RefreshToken, "ua", "127.0.0.1")
	require.NoError(t, err)
}

func TestService_ChangePassword_WrongCurrent(t *testing.T) {
	h := newHarness()
	user := h.seedUser(t, "grace@example.com", "old password 123")

	err := h.service.ChangePassword(context.Background(), user.ID, "not it", "new password 456", "token")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

// # Email Verification

func TestService_VerifyEmail(t *testing.T) {
	h := newHarness()

	user, err := h.service.Register(context.Background(), auth.RegisterInput{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.False(t, user.IsVerified)

	// Pull the pending token straight out of the fake store.
	var token string
	for stored := range h.verifyTokens.values {
		token = stored
	}
	require.NotEmpty(t, token)

	require.NoError(t, h.service.VerifyEmail(context.Background(), token))
	assert.True(t, h.users.byID[user.ID].IsVerified)

	// The token is consumed on use; the store's sentence passes through
	// unmodified.
	err = h.service.VerifyEmail(context.Background(), token)
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "Token is invalid or expired", appError.Message)
}
