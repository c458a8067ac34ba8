package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const fileExtension = ".cache"

// FilesystemCache stores one file per key, named after the SHA-1 of the key,
// in a single directory.
type FilesystemCache struct {
	dir string
	now func() time.Time
}

type fileEntry struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt *int64          `json:"expires_at"`
}

// NewFilesystemCache creates dir if needed and returns a cache rooted there.
func NewFilesystemCache(dir string) (*FilesystemCache, error) {
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCacheDirectory, dir, err)
	}
	return &FilesystemCache{dir: dir, now: time.Now}, nil
}

func (c *FilesystemCache) Dir() string { return c.dir }

func (c *FilesystemCache) Get(key string, target any) (bool, error) {
	raw, found, err := c.read(key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrCorruptEntry, key, err)
	}
	return true, nil
}

// read returns the stored JSON for key, removing the file if it expired.
func (c *FilesystemCache) read(key string) (json.RawMessage, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	path := c.path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("%w %q: %w", ErrCorruptEntry, key, err)
	}
	if entry.ExpiresAt != nil && c.now().Unix() >= *entry.ExpiresAt {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("remove expired %q: %w", key, err)
		}
		return nil, false, nil
	}
	return entry.Value, true, nil
}

// Set writes value atomically: the entry is written to a temporary file in
// the cache directory and renamed into place.
func (c *FilesystemCache) Set(key string, value any, ttl time.Duration) error {
	if err := validKey(key); err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	entry := fileEntry{Value: raw}
	if ttl > 0 {
		exp := c.now().Add(ttl).Unix()
		entry.ExpiresAt = &exp
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	tmp, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (c *FilesystemCache) Has(key string) (bool, error) {
	_, found, err := c.read(key)
	return found, err
}

func (c *FilesystemCache) Delete(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Flush removes every cache file in the directory.
func (c *FilesystemCache) Flush() error {
	files, err := filepath.Glob(filepath.Join(c.dir, "*"+fileExtension))
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	var errs []error
	for _, f := range files {
		if err := os.Remove(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GetMulti returns the raw JSON of every live entry among keys.
func (c *FilesystemCache) GetMulti(keys []string) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		raw, found, err := c.read(key)
		if err != nil {
			return nil, err
		}
		if found {
			result[key] = raw
		}
	}
	return result, nil
}

func (c *FilesystemCache) SetMulti(items map[string]any, ttl time.Duration) error {
	for key, value := range items {
		if err := c.Set(key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (c *FilesystemCache) DeleteMulti(keys []string) error {
	for _, key := range keys {
		if err := c.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (c *FilesystemCache) path(key string) string {
	sum := sha1.Sum([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+fileExtension)
}
