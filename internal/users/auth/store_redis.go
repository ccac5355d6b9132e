// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/constants"
)

// RedisTokenStore implements [TokenStore] on top of Redis with a key prefix.
//
// One-shot tokens (password reset, email verification) live exclusively in
// Redis: the TTL is enforced by the store itself, so an expired token simply
// stops existing.
type RedisTokenStore struct {
	client   *redis.Client
	prefix   string
	notFound string
}

// NewResetTokenStore creates a Redis-backed store for password reset tokens.
func NewResetTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{
		client:   client,
		prefix:   constants.RedisPrefixResetToken,
		notFound: "Reset token is invalid or expired",
	}
}

// NewVerificationTokenStore creates a Redis-backed store for email verification tokens.
func NewVerificationTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{
		client:   client,
		prefix:   constants.RedisPrefixVerifyToken,
		notFound: "Verification token is invalid or expired",
	}
}

/*
Set stores a token with its associated userID and TTL.

Parameters:
  - context: context.Context
  - token: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisTokenStore) Set(context context.Context, token string, userID string, ttl time.Duration) error {

	// Build the prefixed key
	key := repository.prefix + token

	// Set the token with TTL
	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_set_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Get retrieves the userID for a given token.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - string: Original UserID
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisTokenStore) Get(context context.Context, token string) (string, error) {

	// Build the prefixed key
	key := repository.prefix + token

	// Get the token from Redis
	userID, err := repository.client.Get(context, key).Result()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFoundMessage(repository.notFound)
		}
		return "", fmt.Errorf("redis_token_get_failed: %w", err)
	}

	// Return the userID
	return userID, nil
}

/*
Delete removes the token from Redis.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisTokenStore) Delete(context context.Context, token string) error {

	// Build the prefixed key
	key := repository.prefix + token

	// Delete the token from Redis
	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_token_delete_failed: %w", err)
	}

	// Return nil on success
	return nil
}
