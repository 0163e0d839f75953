package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// FileCache keeps one JSON document per key under dir, sharded by the first
// two hex digits of the key hash. Entries are written to a temporary file and
// renamed into place, so readers see either the old entry or the new one.
type FileCache struct {
	dir string
	now func() time.Time
}

// fileEntry is the on-disk record. Key guards against reading another key's
// entry after a hash collision.
type fileEntry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (e fileEntry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "file cache needs a directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "create cache directory %s", dir)
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// Get returns the entry for key. Missing, expired and unreadable entries are
// misses; the latter two are removed. Only I/O failures are errors.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "read cache entry %s", path)
	}

	var e fileEntry
	if err := json.Unmarshal(raw, &e); err != nil || e.expired(c.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if e.Key != key {
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes the entry for key atomically.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := fileEntry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode cache entry")
	}

	path := c.path(key)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create cache shard %s", dir)
	}
	return writeAtomic(dir, path, raw)
}

// writeAtomic writes raw to a temporary file in dir and renames it to path.
func writeAtomic(dir, path string, raw []byte) error {
	tmp, err := os.CreateTemp(dir, ".entry-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create temporary cache file in %s", dir)
	}
	name := tmp.Name()

	_, err = tmp.Write(raw)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, 0o644)
	}
	if err == nil {
		err = os.Rename(name, path)
	}
	if err != nil {
		_ = os.Remove(name)
		return errors.Wrap(errors.ErrCodeInternal, err, "write cache entry %s", path)
	}
	return nil
}

// Delete removes the entry for key. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	if err := os.Remove(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete cache entry %s", path)
	}
	return nil
}

func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
