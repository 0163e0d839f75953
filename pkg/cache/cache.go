// Package cache stores generated layouts so that seeded requests can be
// answered without running the filler again.
//
// Only seeded generations are cacheable: with a fixed seed the tiling is a
// pure function of its parameters. Unseeded runs draw a fresh seed every
// time and bypass the cache.
//
// # Backends
//
//   - [NullCache]: caching disabled
//   - [MemoryCache]: in-process map, for a single server instance
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for multi-instance deployments
//   - [MongoCache]: a MongoDB collection with TTL expiry
//
// [Open] picks a backend from a URL-like spec:
//
//	c, err := cache.Open(ctx, "redis://localhost:6379/0")
//	defer c.Close()
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// TTLLayout is how long a cached layout stays valid.
const TTLLayout = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the backend named by spec:
//
//	""  or "none"        NullCache
//	"memory"             MemoryCache
//	"file://<dir>"       FileCache
//	"redis://..."        RedisCache
//	"mongodb://..."      MongoCache (database "mosaic", collection "layouts")
//
// Any other spec is an INVALID_CONFIG error.
func Open(ctx context.Context, spec string) (Cache, error) {
	switch {
	case spec == "" || spec == "none":
		return NewNullCache(), nil
	case spec == "memory":
		return NewMemoryCache(), nil
	case strings.HasPrefix(spec, "file://"):
		fc, err := NewFileCache(strings.TrimPrefix(spec, "file://"))
		if err != nil {
			return nil, err
		}
		return fc, nil
	case strings.HasPrefix(spec, "redis://"), strings.HasPrefix(spec, "rediss://"):
		return NewRedisCache(ctx, spec)
	case strings.HasPrefix(spec, "mongodb://"), strings.HasPrefix(spec, "mongodb+srv://"):
		return NewMongoCache(ctx, spec, DefaultMongoDatabase, DefaultMongoCollection)
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", spec)
}

// NullCache never stores anything; every Get misses.
type NullCache struct{}

// NewNullCache returns a cache that disables caching.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
