package beaconclient

import (
	"strings"
	"sync"
	"time"
)

// defaultStaleTime mirrors the 30 second freshness window the UI uses for
// catalogue reads: short enough to pick up fresh data after upgrades.
const defaultStaleTime = 30 * time.Second

// Cache stores one value per (tag, params) pair. It is an explicit
// service constructed per client, not a package-level singleton, so tests
// and long-lived processes control its lifetime.
type Cache struct {
	mu        sync.Mutex
	staleTime time.Duration
	entries   map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewCache builds a cache whose entries expire after staleTime. A zero
// staleTime selects the default window.
func NewCache(staleTime time.Duration) *Cache {
	if staleTime <= 0 {
		staleTime = defaultStaleTime
	}
	return &Cache{staleTime: staleTime, entries: make(map[string]cacheEntry)}
}

// Invalidate drops every entry under the tag, forcing the next read of
// that operation to refetch.
func (c *Cache) Invalidate(tag string) {
	prefix := tag + "\x00"
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

func (c *Cache) get(tag, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[tag+"\x00"+key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) put(tag, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tag+"\x00"+key] = cacheEntry{value: value, expires: time.Now().Add(c.staleTime)}
}
