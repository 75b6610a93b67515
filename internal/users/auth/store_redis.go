// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lenahoward/inkwell/internal/platform/constants"
)

// RedisAttemptRepository implements AttemptRepository using Redis counters.
//
// Each email maps to one INCR counter keyed under
// [constants.RedisPrefixLoginAttempts]; the TTL is set when the counter is
// first created so the window slides from the first failure.
type RedisAttemptRepository struct {
	client *redis.Client
}

// NewAttemptRepository creates a new Redis-backed AttemptRepository.
func NewAttemptRepository(client *redis.Client) *RedisAttemptRepository {
	return &RedisAttemptRepository{client: client}
}

/*
Incr records one failed login and returns the count for the active window.

Parameters:
  - context: context.Context
  - email: string
  - window: time.Duration

Returns:
  - int64: Failure count including this one
  - error: Execution errors
*/
func (repository *RedisAttemptRepository) Incr(context context.Context, email string, window time.Duration) (int64, error) {
	key := constants.RedisPrefixLoginAttempts + email

	count, err := repository.client.Incr(context, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_attempts_incr_failed: %w", err)
	}

	// First failure in a fresh window: start the expiry clock.
	if count == 1 {
		if err := repository.client.Expire(context, key, window).Err(); err != nil {
			return count, fmt.Errorf("redis_login_attempts_expire_failed: %w", err)
		}
	}

	return count, nil
}

/*
Count returns the current failure count without modifying the counter.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - int64: Current count, 0 when no counter exists
  - error: Execution errors
*/
func (repository *RedisAttemptRepository) Count(context context.Context, email string) (int64, error) {
	key := constants.RedisPrefixLoginAttempts + email

	count, err := repository.client.Get(context, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_attempts_get_failed: %w", err)
	}

	return count, nil
}

/*
Reset clears the email's counter after a successful login.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisAttemptRepository) Reset(context context.Context, email string) error {
	key := constants.RedisPrefixLoginAttempts + email

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_login_attempts_reset_failed: %w", err)
	}

	return nil
}
