// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/ctxkey"
	"github.com/relatolabs/relato/internal/platform/respond"
	"github.com/relatolabs/relato/internal/platform/sec"
)

// TokenVerifier is the slice of the token service this middleware needs.
// Taking an interface keeps tests free to plug in a fake verifier.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate resolves the Authorization header when one is present.
//
// No header means the request continues anonymously; a header that is
// present but malformed or unverifiable is rejected outright rather than
// silently downgraded to anonymous. Verified claims land in the context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := context.WithValue(request.Context(), ctxkey.KeyUser, claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth turns away anonymous requests. Mount it after [Authenticate]
// on any route group that needs a logged-in caller.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if GetUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// GetUser reads the verified claims off the context; nil for anonymous
// requests.
func GetUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
