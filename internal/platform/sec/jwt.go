// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package sec holds the security primitives: bcrypt hashing, opaque token
// generation, and RS256 JWT issue and verify. Domain code reaches it only
// through small interfaces, never the jwt library directly.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the access-token payload. The account's id, name, and role
// ride inside the token so the middleware can rebuild the caller's identity
// without a database lookup per request. Claim names are shortened to keep
// the token compact.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"uid"`
	Name   string `json:"nam"`
	Role   string `json:"rol"`
}

// TokenService signs and verifies access tokens with an RSA key pair.
// The private key stays on the issuing side; anything holding only the
// public key can still verify.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
}

func loadRSAKey[T any](path string, parse func([]byte) (T, error), kind string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("sec: read %s key %s: %w", kind, path, err)
	}
	key, err := parse(data)
	if err != nil {
		return zero, fmt.Errorf("sec: parse %s key: %w", kind, err)
	}
	return key, nil
}

// NewTokenService loads the PEM key pair from disk. Bad or missing keys
// fail startup rather than the first login.
func NewTokenService(privateKeyPath, publicKeyPath, issuer string) (*TokenService, error) {
	privateKey, err := loadRSAKey(privateKeyPath, jwt.ParseRSAPrivateKeyFromPEM, "private")
	if err != nil {
		return nil, err
	}

	publicKey, err := loadRSAKey(publicKeyPath, jwt.ParseRSAPublicKeyFromPEM, "public")
	if err != nil {
		return nil, err
	}

	return &TokenService{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
	}, nil
}

// GenerateAccessToken mints a signed token for the account with the given
// lifetime.
func (service *TokenService) GenerateAccessToken(userID, name, role string, timeToLive time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(timeToLive)),
		},
		UserID: userID,
		Name:   name,
		Role:   role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature, expiry, and claim shape. The signing
// method is pinned to RSA so an attacker cannot downgrade to none or HMAC.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}
	return claims, nil
}
