// Package cache implements the read cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-coach/backend/config"
	"github.com/finance-coach/backend/internal/application/adapter"
)

// redisCache implements the adapter.ReadCache interface.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed read cache.
func NewRedisCache(cfg config.RedisConfig) adapter.ReadCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &redisCache{client: client}
}

// NewRedisCacheWithClient wraps an existing client, used by tests.
func NewRedisCacheWithClient(client *redis.Client) adapter.ReadCache {
	return &redisCache{client: client}
}

// Get returns the cached value for key; redis.Nil maps to a plain miss.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set stores value under key for the given TTL.
func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
