package cache

import (
	"sync"
	"time"
)

const (
	DefaultTTL        = time.Hour
	DefaultMaxEntries = 1024
)

type entry struct {
	value     string
	expiresAt time.Time
}

// TTLCache is a bounded in-process lookup cache with per-entry expiry.
// Entries expire on their TTL rather than being left to grow unbounded; a
// full cache evicts expired entries first and falls back to dropping the
// entry closest to expiry. Safe for concurrent use.
type TTLCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]entry
	now        func() time.Time // test seam
}

func NewTTLCache(ttl time.Duration, maxEntries int) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &TTLCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]entry),
		now:        time.Now,
	}
}

// Get returns the cached value for key. Expired entries are removed and
// reported as misses.
func (c *TTLCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if c.now().After(e.expiresAt) {
		c.Invalidate(key)
		return "", false
	}
	return e.value, true
}

// Set stores a value under key with a fresh TTL.
func (c *TTLCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate removes a single entry.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Refresh extends a live entry's expiry by a full TTL. Expired or missing
// keys are not resurrected.
func (c *TTLCache) Refresh(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return false
	}
	e.expiresAt = c.now().Add(c.ttl)
	c.entries[key] = e
	return true
}

// Len reports the number of entries currently held, expired or not.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictLocked drops expired entries, or the soonest-to-expire entry when
// nothing has expired yet. Caller holds the write lock.
func (c *TTLCache) evictLocked() {
	now := c.now()
	removed := false
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed = true
		}
	}
	if removed {
		return
	}

	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey = k
			oldest = e.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
