// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/constants"
	"github.com/relatolabs/relato/internal/platform/ctxutil"
	"github.com/relatolabs/relato/internal/platform/i18n"
	"github.com/relatolabs/relato/internal/platform/middleware"
	requestutil "github.com/relatolabs/relato/internal/platform/request"
	"github.com/relatolabs/relato/internal/platform/respond"
	"github.com/relatolabs/relato/internal/platform/validate"
)

// Handler exposes the account endpoints. It owns only transport: decoding,
// validation, cookies and envelopes. Credential decisions live in [Service].
type Handler struct {
	authService *Service
	messages    *i18n.Bundle
}

func NewHandler(service *Service, messages *i18n.Bundle) *Handler {
	return &Handler{authService: service, messages: messages}
}

// Routes mounts the account endpoints. The first group is reachable without
// a token; the second requires an authenticated request.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/verify-email", handler.verifyEmail)
	router.Post("/forgot-password", handler.forgotPassword)
	router.Post("/reset-password", handler.resetPassword)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/user", handler.currentUser)
		r.Post("/logout", handler.logout)
		r.Post("/change-password", handler.changePassword)
	})

	return router
}

// t resolves a message key against the request's negotiated locale.
func (handler *Handler) t(request *http.Request, key string) string {
	return handler.messages.T(ctxutil.GetLocale(request.Context()), key)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

/*
register opens a new account.

POST /api/v1/auth/register

Description: Field validation happens here; the email-uniqueness check is
the service's call. The created account still needs email verification
before it can log in.

Response:
  - 201: the stored profile
  - 409: email already taken
  - 422: field errors
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var form registerRequest
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldName, form.Name).
		MinLen(FieldName, form.Name, 2).
		Required(FieldEmail, form.Email).
		Email(FieldEmail, form.Email).
		Required(FieldPassword, form.Password).
		MinLen(FieldPassword, form.Password, 8)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, handler.t(request, "auth.registered"), map[string]any{
		FieldUser: user,
	})
}

/*
login exchanges credentials for a token pair.

POST /api/v1/auth/login

Description: The access token rides in the body; the refresh token only
ever travels in an HttpOnly cookie scoped to the auth routes, so page
scripts never see it.

Response:
  - 200: access token, its lifetime, and the profile
  - 401: bad credentials
  - 403: account not verified yet
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var form loginRequest
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldEmail, form.Email).Required(FieldPassword, form.Password)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:     form.Email,
		Password:  form.Password,
		UserAgent: request.UserAgent(),
		IPAddress: middleware.RealIP(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setRefreshCookie(writer, session)

	payload := tokenPayload(session)
	payload[FieldUser] = session.User
	respond.Data(writer, handler.t(request, "auth.logged_in"), payload)
}

/*
refresh rotates the refresh cookie for a fresh access token.

POST /api/v1/auth/refresh

Response:
  - 200: new access token
  - 401: cookie absent, expired, or already rotated
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	token, ok := refreshTokenFromCookie(request)
	if !ok {
		respond.Error(writer, request, apperr.Unauthorized("No refresh token present"))
		return
	}

	session, err := handler.authService.RefreshSession(
		request.Context(),
		token,
		request.UserAgent(),
		middleware.RealIP(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setRefreshCookie(writer, session)
	respond.Data(writer, handler.t(request, "auth.session_refreshed"), tokenPayload(session))
}

/*
logout closes the current session.

POST /api/v1/auth/logout

Description: Revokes the session behind the cookie when one is present and
clears the cookie either way, so repeating the call stays a 200.
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if token, ok := refreshTokenFromCookie(request); ok {
		_ = handler.authService.Logout(request.Context(), token)
	}

	clearRefreshCookie(writer)
	respond.Success(writer, handler.t(request, "auth.logged_out"))
}

// currentUser returns the profile of the authenticated caller.
//
// GET /api/v1/auth/user
func (handler *Handler) currentUser(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.GetUser(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Data(writer, handler.t(request, "auth.user_retrieved"), map[string]any{
		FieldUser: user,
	})
}

/*
verifyEmail redeems a verification token.

POST /api/v1/auth/verify-email

Response:
  - 200: account is now verified
  - 404: token unknown or already used
  - 422: token missing from the body
*/
func (handler *Handler) verifyEmail(writer http.ResponseWriter, request *http.Request) {
	var form verifyEmailRequest
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if form.Token == "" {
		respond.Error(writer, request, validate.RequiredError(FieldToken, "is required"))
		return
	}

	if err := handler.authService.VerifyEmail(request.Context(), form.Token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, handler.t(request, "auth.email_verified"))
}

/*
forgotPassword requests a password-reset token.

POST /api/v1/auth/forgot-password

Description: Answers 200 whether or not the email maps to an account, so
the endpoint leaks nothing about which addresses are registered.
*/
func (handler *Handler) forgotPassword(writer http.ResponseWriter, request *http.Request) {
	var form forgotPasswordRequest
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldEmail, form.Email).Email(FieldEmail, form.Email)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.authService.RequestPasswordReset(request.Context(), form.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, handler.t(request, "auth.reset_link_sent"))
}

/*
resetPassword redeems a reset token for a new password.

POST /api/v1/auth/reset-password

Response:
  - 200: password replaced, all sessions revoked
  - 404: token unknown or expired
  - 422: field errors
*/
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var form resetPasswordRequest
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldToken, form.Token).
		Required(FieldPassword, form.Password).
		MinLen(FieldPassword, form.Password, 8)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.ResetPassword(request.Context(), form.Token, form.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, handler.t(request, "auth.password_reset"))
}

/*
changePassword rotates the password of a logged-in user.

POST /api/v1/auth/change-password

Description: Needs both a valid access token and the refresh cookie: the
cookie identifies which session survives while the rest are revoked.

Response:
  - 200: password changed
  - 401: wrong current password, or no session cookie
  - 422: field errors
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, ok := refreshTokenFromCookie(request)
	if !ok {
		respond.Error(writer, request, apperr.Unauthorized("No session cookie present"))
		return
	}

	var form changePasswordRequest
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldCurrentPassword, form.CurrentPassword).
		Required(FieldNewPassword, form.NewPassword).
		MinLen(FieldNewPassword, form.NewPassword, 8)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.authService.ChangePassword(
		request.Context(),
		claims.UserID,
		form.CurrentPassword,
		form.NewPassword,
		token,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer, handler.t(request, "auth.password_changed"))
}

// tokenPayload is the body shape shared by login and refresh.
func tokenPayload(session *LoginSession) map[string]any {
	return map[string]any{
		FieldAccessToken: session.AccessToken,
		FieldTokenType:   "Bearer",
		FieldExpiresIn:   AccessTokenTTL / time.Second,
	}
}

// refreshTokenFromCookie pulls the raw refresh token off the request.
func refreshTokenFromCookie(request *http.Request) (string, bool) {
	cookie, err := request.Cookie(constants.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// setRefreshCookie writes the rotated token, scoped to the auth routes only.
func setRefreshCookie(writer http.ResponseWriter, session *LoginSession) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    session.RefreshToken,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  session.RefreshTokenExpiresAt,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie expires the cookie client-side.
func clearRefreshCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
