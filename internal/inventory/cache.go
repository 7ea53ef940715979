package inventory

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	searchCacheTTL      = 5 * time.Minute
	searchCacheCapacity = 50
)

// cacheEntry is a ranked result list stamped with its creation time. An
// entry is valid only while now-createdAt <= TTL; expired entries are
// treated as absent and evicted lazily on the next lookup.
type cacheEntry struct {
	result    []Vehicle
	createdAt time.Time
}

// searchCache memoises search results keyed by a fingerprint of the
// normalised query, the result limit and the catalog size. The catalog size
// in the key makes a reload invalidate all prior entries without a flush.
//
// Eviction is by oldest creation timestamp, not recency of access; this is
// intentionally not an LRU.
type searchCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	now      func() time.Time

	entries map[string]cacheEntry
	hits    int
	misses  int
}

func newSearchCache(ttl time.Duration, capacity int, now func() time.Time) *searchCache {
	if now == nil {
		now = time.Now
	}
	return &searchCache{
		ttl:      ttl,
		capacity: capacity,
		now:      now,
		entries:  make(map[string]cacheEntry),
	}
}

// fingerprint derives the deterministic cache key.
func (c *searchCache) fingerprint(query string, maxResults, catalogSize int) string {
	raw := fmt.Sprintf("%s:%d:%d", strings.TrimSpace(strings.ToLower(query)), maxResults, catalogSize)
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// GetOrCompute returns the cached ranked list for the query when a fresh
// entry exists, otherwise runs compute and stores its result. Errors from
// compute propagate unchanged and nothing is cached for that key.
func (c *searchCache) GetOrCompute(query string, maxResults, catalogSize int, compute func() ([]Vehicle, error)) ([]Vehicle, error) {
	key := c.fingerprint(query, maxResults, catalogSize)

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		if c.now().Sub(entry.createdAt) <= c.ttl {
			c.hits++
			c.mu.Unlock()
			return entry.result, nil
		}
		delete(c.entries, key)
	}
	c.misses++
	c.mu.Unlock()

	result, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.entries[key] = cacheEntry{result: result, createdAt: c.now()}
	c.mu.Unlock()

	return result, nil
}

// evictOldestLocked removes the single entry with the smallest creation
// timestamp. Caller holds c.mu.
func (c *searchCache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		first     = true
	)
	for key, entry := range c.entries {
		if first || entry.createdAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.createdAt
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// CacheStats is a snapshot of the cache counters.
type CacheStats struct {
	Hits           int     `json:"hits"`
	Misses         int     `json:"misses"`
	HitRatePercent float64 `json:"hit_rate_percent"`
	CachedEntries  int     `json:"cached_entries"`
}

func (c *searchCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := CacheStats{
		Hits:          c.hits,
		Misses:        c.misses,
		CachedEntries: len(c.entries),
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRatePercent = float64(c.hits) / float64(total) * 100
	}
	return stats
}

// Clear empties the store and resets the counters.
func (c *searchCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
	c.hits = 0
	c.misses = 0
}
