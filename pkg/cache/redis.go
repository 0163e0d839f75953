package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// RedisCache stores entries in Redis under a key prefix.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache connects to the server named by url
// (redis://[user:password@]host:port/db) and pings it.
func NewRedisCache(ctx context.Context, url string) (Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse redis url")
	}
	client := redis.NewClient(opts)
	err = retry(ctx, connectAttempts, connectDelay, func() error {
		return retryable(client.Ping(ctx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis at %s", opts.Addr)
	}
	return NewRedisCacheFromClient(client, "mosaic:"), nil
}

// NewRedisCacheFromClient wraps an existing client. Every key is prefixed
// with prefix.
func NewRedisCacheFromClient(client redis.UniversalClient, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value with Redis-side expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

// Delete removes key.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
