// Package cache provides the key/value caches used to persist computed
// results, such as module orderings, between application starts. Values are
// stored JSON-encoded and decoded into a caller-supplied target on read.
package cache

import (
	"errors"
	"time"
)

// Cache errors
var (
	ErrCacheFull      = errors.New("cache is full")
	ErrInvalidKey     = errors.New("invalid cache key")
	ErrCorruptEntry   = errors.New("corrupt cache entry")
	ErrCacheDirectory = errors.New("cannot create cache directory")
)

// Cache is the minimal read/write surface.
type Cache interface {
	// Get decodes the value stored under key into target and reports whether
	// a live entry was found.
	Get(key string, target any) (bool, error)
	// Set stores value under key. A ttl of zero never expires.
	Set(key string, value any, ttl time.Duration) error
}

// Store is a Cache with bulk and maintenance operations.
type Store interface {
	Cache
	Has(key string) (bool, error)
	Delete(key string) error
	Flush() error
	GetMulti(keys []string) (map[string][]byte, error)
	SetMulti(items map[string]any, ttl time.Duration) error
	DeleteMulti(keys []string) error
}

func validKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
