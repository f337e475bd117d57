package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thsampaio/customer-gateway/internal/logger"
)

// Key prefixes for the two per-client rate-limit sub-keys.
const (
	attemptsKeyPrefix = "attempts:"
	jailKeyPrefix     = "jail:"
)

// redisRateLimitStore is the go-redis implementation of [RateLimitStore].
//
// Redis INCR and EXPIRE give the atomicity that keeps the failure counter
// race-free across concurrent requests from the same client. Unlike the
// cache, errors here are returned to the caller: the middleware owns the
// fail-open policy decision.
type redisRateLimitStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisRateLimitStore constructs a [RateLimitStore] on the given client.
// client may be nil when redis is unavailable; every operation then returns
// an error and the middleware fails open.
func NewRedisRateLimitStore(client *redis.Client, logger *logger.Logger) RateLimitStore {
	logger.Debug().Msg("creating redis rate limit store")
	return &redisRateLimitStore{
		client: client,
		logger: logger,
	}
}

// IsLocked reports whether the jail key for id exists, and its remaining TTL.
func (s *redisRateLimitStore) IsLocked(ctx context.Context, id string) (bool, time.Duration, error) {
	if s.client == nil {
		return false, 0, errRateLimitStoreUnavailable
	}

	jailKey := jailKeyPrefix + id
	exists, err := s.client.Exists(ctx, jailKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("error checking lockout key: %w", err)
	}
	if exists == 0 {
		return false, 0, nil
	}

	ttl, err := s.client.TTL(ctx, jailKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("error reading lockout ttl: %w", err)
	}

	return true, ttl, nil
}

// RecordFailure increments the attempt counter for id and (re)sets its
// expiry to window, returning the new count.
func (s *redisRateLimitStore) RecordFailure(ctx context.Context, id string, window time.Duration) (int64, error) {
	if s.client == nil {
		return 0, errRateLimitStoreUnavailable
	}

	attemptsKey := attemptsKeyPrefix + id
	count, err := s.client.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("error incrementing attempt counter: %w", err)
	}
	if err = s.client.Expire(ctx, attemptsKey, window).Err(); err != nil {
		return 0, fmt.Errorf("error setting attempt counter expiry: %w", err)
	}

	return count, nil
}

// Lock places id in the locked state for the given duration.
func (s *redisRateLimitStore) Lock(ctx context.Context, id string, jail time.Duration) error {
	if s.client == nil {
		return errRateLimitStoreUnavailable
	}

	if err := s.client.SetEx(ctx, jailKeyPrefix+id, "1", jail).Err(); err != nil {
		return fmt.Errorf("error setting lockout key: %w", err)
	}

	return nil
}

// Clear removes both the attempt counter and any stale lockout key for id.
func (s *redisRateLimitStore) Clear(ctx context.Context, id string) error {
	if s.client == nil {
		return errRateLimitStoreUnavailable
	}

	if err := s.client.Del(ctx, attemptsKeyPrefix+id, jailKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("error clearing rate limit keys: %w", err)
	}

	return nil
}
