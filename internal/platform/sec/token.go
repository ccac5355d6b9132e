// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateSecureToken returns a cryptographically random hex token.
// byteLength is the entropy size; the returned string is twice as long.
func GenerateSecureToken(byteLength int) (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashToken produces the SHA-256 digest of a token for at-rest storage.
//
// Refresh, reset, and verification tokens are never persisted in plain text;
// only this digest is stored, so a database leak does not expose live tokens.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
