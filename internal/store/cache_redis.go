package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thsampaio/customer-gateway/internal/config"
	"github.com/thsampaio/customer-gateway/internal/logger"
)

// NewRedisClient constructs a go-redis client for the given configuration
// and verifies it with a short ping.
//
// A failed ping is not fatal: the gateway runs in degraded mode without a
// cache, so this returns a nil client alongside the error and lets the
// caller decide whether to proceed.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("addr", cfg.Addr).Msg("redis ping failed")
		_ = client.Close()
		return nil, err
	}
	log.Info().Str("func", "NewRedisClient").Str("addr", cfg.Addr).Msg("connected to redis successfully")

	return client, nil
}

// redisCache is the go-redis implementation of [Cache].
//
// Every failure degrades to a miss or a no-op: the cache is an optimization
// layer and must never fail the enclosing repository operation. A nil client
// (redis unavailable at startup) yields a cache that always misses.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisCache constructs a [Cache] storing entries with the given fixed
// TTL. client may be nil, in which case every operation is a no-op.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) Cache {
	logger.Debug().Dur("ttl", ttl).Msg("creating redis cache")
	return &redisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached value for key, treating every backend failure as a
// miss.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromContext(ctx).Error().Err(err).Str("key", key).Msg("cache get error")
		}
		return nil, false
	}

	return raw, true
}

// Set stores value under key with the fixed TTL. Failures are logged and
// dropped.
func (c *redisCache) Set(ctx context.Context, key string, value []byte) {
	if c.client == nil {
		return
	}

	if err := c.client.SetEx(ctx, key, value, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("key", key).Msg("cache set error")
	}
}

// Del removes the given keys. More than one key is removed in a single
// pipelined round trip so related invalidations land together. Failures are
// logged and dropped.
func (c *redisCache) Del(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}

	var err error
	if len(keys) == 1 {
		err = c.client.Del(ctx, keys[0]).Err()
	} else {
		_, err = c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			return nil
		})
	}
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Strs("keys", keys).Msg("cache del error")
	}
}
