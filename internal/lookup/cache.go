// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"sync"

	"github.com/pdiddy/glossary-engine/pkg/types"
)

type cacheKey struct {
	lang  types.Language
	query string
}

// CacheStats reports cache activity since creation.
type CacheStats struct {
	Entries int
	Hits    int
	Misses  int
}

// Cache holds rendered replies keyed by language and query. Entries are
// never evicted; the glossaries behind them are immutable for the life of
// the process. Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]string
	hits    int
	misses  int
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]string)}
}

// Get returns the cached reply for (lang, query).
func (c *Cache) Get(lang types.Language, query string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	reply, ok := c.entries[cacheKey{lang, query}]
	return reply, ok
}

// GetOrCompute returns the cached reply for (lang, query), calling
// compute and storing its result on a miss. compute runs without the lock
// held; if two callers race on the same key the first stored reply wins
// and both receive it.
func (c *Cache) GetOrCompute(lang types.Language, query string, compute func() string) (reply string, hit bool) {
	key := cacheKey{lang, query}

	c.mu.RLock()
	reply, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return reply, true
	}

	computed := compute()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if existing, ok := c.entries[key]; ok {
		return existing, false
	}
	c.entries[key] = computed
	return computed, false
}

// Stats returns a snapshot of cache activity.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
