package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Hour))
	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "key"))
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	value := []byte("value")
	require.NoError(t, c.Set(ctx, "key", value, 0))
	value[0] = 'X'

	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "value", string(data), "stored data must be a copy")

	require.NoError(t, c.Delete(ctx, "key"))
	_, hit, _ = c.Get(ctx, "key")
	assert.False(t, hit, "Get after Delete should miss")
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "key", []byte("v"), time.Minute))
	_, hit, _ := c.Get(ctx, "key")
	require.True(t, hit, "fresh entry should hit")

	now = now.Add(2 * time.Minute)
	_, hit, _ = c.Get(ctx, "key")
	assert.False(t, hit, "expired entry should miss")
	assert.Zero(t, c.Len(), "expired entry should be removed")
}

func newFileCache(t *testing.T) *FileCache {
	t.Helper()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c := newFileCache(t)

	require.NoError(t, c.Set(ctx, "layout:abc", []byte(`{"rows":2}`), time.Hour))
	data, hit, err := c.Get(ctx, "layout:abc")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, `{"rows":2}`, string(data))

	_, hit, err = c.Get(ctx, "layout:other")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Delete(ctx, "layout:abc"))
	assert.NoError(t, c.Delete(ctx, "layout:abc"), "deleting a missing key should succeed")

	// no temporary files are left behind
	shard, err := os.ReadDir(filepath.Dir(c.path("layout:abc")))
	require.NoError(t, err)
	assert.Empty(t, shard)
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newFileCache(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "key", []byte("v"), time.Minute))
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	now = now.Add(2 * time.Minute)
	_, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoFileExists(t, c.path("key"), "expired entry should be removed")

	_, hit, _ = c.Get(ctx, "forever")
	assert.True(t, hit, "a zero ttl never expires")
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c := newFileCache(t)

	path := c.path("key")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, hit, err := c.Get(ctx, "key")
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoFileExists(t, path, "corrupt entry should be removed")
}

func TestFileCacheForeignKey(t *testing.T) {
	ctx := context.Background()
	c := newFileCache(t)

	// an entry recorded for another key at this key's path is a miss
	require.NoError(t, c.Set(ctx, "other", []byte("v"), 0))
	require.NoError(t, os.MkdirAll(filepath.Dir(c.path("key")), 0o755))
	require.NoError(t, os.Rename(c.path("other"), c.path("key")))

	_, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFileCacheConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	c := newFileCache(t)

	values := make(map[string]bool)
	for i := range 8 {
		values[fmt.Sprintf(`{"writer":%d,"pad":"%0512d"}`, i, i)] = true
	}
	require.NoError(t, c.Set(ctx, "key", []byte(`{"writer":-1}`), 0))
	values[`{"writer":-1}`] = true

	var wg sync.WaitGroup
	for v := range values {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				assert.NoError(t, c.Set(ctx, "key", []byte(v), 0))
			}
		}()
	}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				data, hit, err := c.Get(ctx, "key")
				if !assert.NoError(t, err) || !assert.True(t, hit, "reader saw a missing or torn entry") {
					return
				}
				assert.True(t, values[string(data)], "unexpected data %q", data)
			}
		}()
	}
	wg.Wait()
}

func TestFileCacheErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewFileCache("")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))

	c := newFileCache(t)
	// a directory where the entry should be makes every operation fail
	require.NoError(t, os.MkdirAll(filepath.Join(c.path("key"), "x"), 0o755))

	_, _, err = c.Get(ctx, "key")
	assert.True(t, errors.Is(err, errors.ErrCodeInternal), "Get() = %v", err)
	err = c.Set(ctx, "key", []byte("v"), 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInternal), "Set() = %v", err)
	err = c.Delete(ctx, "key")
	assert.True(t, errors.Is(err, errors.ErrCodeInternal), "Delete() = %v", err)
}

func TestKey(t *testing.T) {
	k1 := Key("layout", 20, 5, 0.25)
	k2 := Key("layout", 20, 5, 0.25)
	k3 := Key("layout", 20, 6, 0.25)

	assert.Equal(t, k1, k2, "Key should be deterministic")
	assert.NotEqual(t, k1, k3)
	assert.Len(t, k1, len("layout:")+64)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		spec string
		want Cache
	}{
		{"", NullCache{}},
		{"none", NullCache{}},
		{"memory", &MemoryCache{}},
		{"file://" + t.TempDir(), &FileCache{}},
	}
	for _, tt := range tests {
		c, err := Open(ctx, tt.spec)
		if !assert.NoError(t, err, "Open(%q)", tt.spec) {
			continue
		}
		assert.IsType(t, tt.want, c, "Open(%q)", tt.spec)
		c.Close()
	}

	for _, spec := range []string{"bogus", "file://"} {
		_, err := Open(ctx, spec)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "Open(%q) = %v", spec, err)
	}
}

// Backends that need a live server run only when pointed at one.
func TestExternalBackends(t *testing.T) {
	for _, env := range []string{"MOSAIC_TEST_REDIS_URL", "MOSAIC_TEST_MONGO_URL"} {
		t.Run(env, func(t *testing.T) {
			url := os.Getenv(env)
			if url == "" {
				t.Skipf("%s not set", env)
			}
			ctx := context.Background()
			c, err := Open(ctx, url)
			require.NoError(t, err)
			defer c.Close()

			key := Key("test", t.Name(), time.Now().UnixNano())
			require.NoError(t, c.Set(ctx, key, []byte("v"), time.Minute))
			data, hit, err := c.Get(ctx, key)
			require.NoError(t, err)
			assert.True(t, hit)
			assert.Equal(t, "v", string(data))
			assert.NoError(t, c.Delete(ctx, key))
		})
	}
}
