// Package infra provides shared infrastructure for the webhook.site MCP
// server: an in-memory TTL cache, a circuit breaker, and request
// deduplication used by the HTTP client layer.
package infra

import (
	"sync"
	"time"
)

const (
	// DefaultMaxCacheEntries caps cache growth.
	DefaultMaxCacheEntries = 1000

	// DefaultCacheCleanup is how often expired entries are swept.
	DefaultCacheCleanup = 5 * time.Minute
)

type cacheEntry struct {
	data       interface{}
	expiresAt  time.Time
	accessedAt time.Time
}

// Cache is a size-bounded TTL cache. When the entry count exceeds the
// limit, the least recently accessed entries are evicted.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	maxEntries int

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCache creates a cache holding at most maxEntries entries.
// A background sweeper removes expired entries until Close is called.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	c := &Cache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get returns the cached value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	now := time.Now()
	if now.After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	entry.accessedAt = now
	return entry.data, true
}

// Set stores a value under key for the given TTL, evicting the least
// recently accessed entries if the cache is full.
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked(len(c.entries) - c.maxEntries + 1)
	}
	c.entries[key] = &cacheEntry{
		data:       data,
		expiresAt:  now.Add(ttl),
		accessedAt: now,
	}
}

// Delete removes a key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeletePrefix removes all entries whose keys start with prefix.
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
}

// Size returns the current number of entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops the background sweeper.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *Cache) sweepLoop() {
	ticker := time.NewTicker(DefaultCacheCleanup)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// evictOldestLocked removes the n least recently accessed entries.
// Caller must hold c.mu.
func (c *Cache) evictOldestLocked(n int) {
	for ; n > 0; n-- {
		var oldestKey string
		var oldestAt time.Time
		first := true
		for k, entry := range c.entries {
			if first || entry.accessedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = entry.accessedAt
				first = false
			}
		}
		if first {
			return
		}
		delete(c.entries, oldestKey)
	}
}
