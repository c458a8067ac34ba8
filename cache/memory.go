package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryCache keeps entries in process memory. Expired entries are dropped
// when read or when Cleanup runs.
type MemoryCache struct {
	maxItems int
	items    map[string]cacheItem
	mutex    sync.RWMutex
	now      func() time.Time
}

type cacheItem struct {
	value      []byte
	expiration time.Time
}

// NewMemoryCache creates a memory cache holding at most maxItems entries;
// zero means unbounded.
func NewMemoryCache(maxItems int) *MemoryCache {
	return &MemoryCache{
		maxItems: maxItems,
		items:    make(map[string]cacheItem),
		now:      time.Now,
	}
}

func (c *MemoryCache) Get(key string, target any) (bool, error) {
	raw, found := c.lookup(key)
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrCorruptEntry, key, err)
	}
	return true, nil
}

func (c *MemoryCache) lookup(key string) ([]byte, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, found := c.items[key]
	if !found || item.expired(c.now()) {
		return nil, false
	}
	return item.value, true
}

func (c *MemoryCache) Set(key string, value any, ttl time.Duration) error {
	if err := validKey(key); err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.items[key]; !exists && c.maxItems > 0 && len(c.items) >= c.maxItems {
		return ErrCacheFull
	}

	var exp time.Time
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}
	c.items[key] = cacheItem{value: raw, expiration: exp}
	return nil
}

func (c *MemoryCache) Has(key string) (bool, error) {
	_, found := c.lookup(key)
	return found, nil
}

func (c *MemoryCache) Delete(key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
	return nil
}

func (c *MemoryCache) Flush() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string]cacheItem)
	return nil
}

// GetMulti returns the raw JSON of every live entry among keys.
func (c *MemoryCache) GetMulti(keys []string) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if raw, found := c.lookup(key); found {
			result[key] = raw
		}
	}
	return result, nil
}

func (c *MemoryCache) SetMulti(items map[string]any, ttl time.Duration) error {
	for key, value := range items {
		if err := c.Set(key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (c *MemoryCache) DeleteMulti(keys []string) error {
	for _, key := range keys {
		if err := c.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Cleanup removes expired entries.
func (c *MemoryCache) Cleanup() {
	now := c.now()
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key, item := range c.items {
		if item.expired(now) {
			delete(c.items, key)
		}
	}
}

func (i cacheItem) expired(now time.Time) bool {
	return !i.expiration.IsZero() && now.After(i.expiration)
}
