package api

import (
	"sync"
	"time"
)

// cacheTTL determines how long a GET response is reused before refetching.
const cacheTTL = 5 * time.Minute

type cacheEntry struct {
	fetched time.Time
	body    []byte
}

// responseCache keeps raw GET responses keyed by endpoint path. Reads are
// synchronous; expired entries are evicted lazily on the read that finds
// them, there is no background sweep. The mutex exists because a day's
// schedule, overrides and events are fetched concurrently.
type responseCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func newResponseCache() *responseCache {
	return &responseCache{entries: make(map[string]cacheEntry)}
}

func (c *responseCache) get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	if time.Since(entry.fetched) > cacheTTL {
		delete(c.entries, path)
		return nil, false
	}
	return entry.body, true
}

func (c *responseCache) put(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = cacheEntry{fetched: time.Now(), body: body}
}
