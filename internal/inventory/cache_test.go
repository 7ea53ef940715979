package inventory

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock is a manually advanced clock for deterministic TTL behavior.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time          { return c.current }
func (c *testClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func singleResult(vin string) func() ([]Vehicle, error) {
	return func() ([]Vehicle, error) {
		return []Vehicle{{VIN: vin, Status: StatusAvailable}}, nil
	}
}

func TestCacheHitAndMissCounters(t *testing.T) {
	clock := newTestClock()
	cache := newSearchCache(searchCacheTTL, searchCacheCapacity, clock.Now)

	first, err := cache.GetOrCompute("suv rojo", 8, 20, singleResult("VIN001"))
	require.NoError(t, err)

	second, err := cache.GetOrCompute("suv rojo", 8, 20, func() ([]Vehicle, error) {
		t.Fatal("compute must not run on a cache hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats := cache.Stats()
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
	assert.InDelta(t, 50.0, stats.HitRatePercent, 1e-9)
	assert.Equal(t, 1, stats.CachedEntries)
}

func TestCacheFingerprintComponents(t *testing.T) {
	clock := newTestClock()
	cache := newSearchCache(searchCacheTTL, searchCacheCapacity, clock.Now)

	// Normalisation: case and surrounding whitespace do not matter.
	assert.Equal(t,
		cache.fingerprint("  SUV Rojo ", 8, 20),
		cache.fingerprint("suv rojo", 8, 20))

	// Limit and catalog size do.
	assert.NotEqual(t,
		cache.fingerprint("suv rojo", 8, 20),
		cache.fingerprint("suv rojo", 5, 20))
	assert.NotEqual(t,
		cache.fingerprint("suv rojo", 8, 20),
		cache.fingerprint("suv rojo", 8, 21))
}

func TestCacheEntryExpiresAfterTTL(t *testing.T) {
	clock := newTestClock()
	cache := newSearchCache(searchCacheTTL, searchCacheCapacity, clock.Now)

	_, err := cache.GetOrCompute("sedan", 8, 20, singleResult("VIN001"))
	require.NoError(t, err)

	clock.Advance(searchCacheTTL + time.Second)

	recomputed := false
	_, err = cache.GetOrCompute("sedan", 8, 20, func() ([]Vehicle, error) {
		recomputed = true
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, recomputed)

	stats := cache.Stats()
	assert.Equal(t, 0, stats.Hits)
	assert.Equal(t, 2, stats.Misses)
}

func TestCacheEvictsOldestEntryAtCapacity(t *testing.T) {
	clock := newTestClock()
	cache := newSearchCache(searchCacheTTL, searchCacheCapacity, clock.Now)

	for i := 0; i < searchCacheCapacity; i++ {
		_, err := cache.GetOrCompute(fmt.Sprintf("query %d", i), 8, 20, singleResult("VIN001"))
		require.NoError(t, err)
		clock.Advance(time.Second)
	}
	require.Equal(t, searchCacheCapacity, cache.Stats().CachedEntries)

	// Reading the oldest entry does not refresh it; eviction goes by
	// creation time, not recency of access.
	_, err := cache.GetOrCompute("query 0", 8, 20, func() ([]Vehicle, error) {
		t.Fatal("query 0 should still be cached")
		return nil, nil
	})
	require.NoError(t, err)

	_, err = cache.GetOrCompute("one more", 8, 20, singleResult("VIN002"))
	require.NoError(t, err)

	assert.Equal(t, searchCacheCapacity, cache.Stats().CachedEntries)

	// The just-read oldest entry is the one that got evicted.
	evicted := cache.fingerprint("query 0", 8, 20)
	cache.mu.Lock()
	_, stillThere := cache.entries[evicted]
	cache.mu.Unlock()
	assert.False(t, stillThere)
}

func TestCacheComputeErrorPropagatesUncached(t *testing.T) {
	clock := newTestClock()
	cache := newSearchCache(searchCacheTTL, searchCacheCapacity, clock.Now)

	boom := errors.New("catalog unavailable")
	_, err := cache.GetOrCompute("suv", 8, 20, func() ([]Vehicle, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Stats().CachedEntries)

	// The failed key is still a miss next time.
	ran := false
	_, err = cache.GetOrCompute("suv", 8, 20, func() ([]Vehicle, error) {
		ran = true
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestCacheClearResetsStoreAndCounters(t *testing.T) {
	clock := newTestClock()
	cache := newSearchCache(searchCacheTTL, searchCacheCapacity, clock.Now)

	_, err := cache.GetOrCompute("suv", 8, 20, singleResult("VIN001"))
	require.NoError(t, err)
	_, err = cache.GetOrCompute("suv", 8, 20, singleResult("VIN001"))
	require.NoError(t, err)

	cache.Clear()

	stats := cache.Stats()
	assert.Zero(t, stats.Hits)
	assert.Zero(t, stats.Misses)
	assert.Zero(t, stats.CachedEntries)
	assert.Zero(t, stats.HitRatePercent)
}
