// Package cache provides the Redis-backed cache and the read-through
// provider cache built on it.
package cache

import (
	"context"
	"log/slog"
	"time"

	"locator/config"
	"locator/internal/domain/lifecycle"
	"locator/internal/domain/service"
	"locator/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// RedisParams defines the required parameters for the Redis cache.
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// redisCache implements service.CacheProvider using Redis.
type redisCache struct {
	client redis.UniversalClient
}

// NewRedisCache returns nil when the cache is disabled; consumers treat the
// CacheProvider as optional.
func NewRedisCache(params RedisParams) service.CacheProvider {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Provider cache disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	c := newRedisCache(client)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to Redis")
			}
			params.Logger.Info("Provider cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}

func newRedisCache(client redis.UniversalClient) *redisCache {
	return &redisCache{client: client}
}

// Get retrieves a value from cache.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s from cache", key)
	}

	return value, nil
}

// Set stores a value with a TTL in seconds.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	ttl := time.Duration(ttlSeconds) * time.Second
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s in cache", key)
	}

	return nil
}

// Delete removes a value from cache.
func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s from cache", key)
	}

	return nil
}

// Close closes the Redis connection.
func (c *redisCache) Close() error {
	return c.client.Close()
}
