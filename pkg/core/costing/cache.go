package costing

import (
	"sync"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/core/params"
)

// =============================================================================
// MEMOIZATION CACHE
// Keyed by the value of the cost inputs themselves, so a hit is only
// possible for identical parameters. Callers that mutate a clone get a
// fresh computation automatically; no invalidation hooks needed.
// =============================================================================

// cacheKey is the value identity of one costing computation.
type cacheKey struct {
	prop   params.Property
	ratios params.CostRatios
}

// Cache memoizes Compute results. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]Breakdown
}

// NewCache creates an empty memoization cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]Breakdown)}
}

// Get returns the breakdown for the given inputs, computing and storing
// it on first use.
func (c *Cache) Get(prop params.Property, ratios params.CostRatios) Breakdown {
	key := cacheKey{prop: prop, ratios: ratios}

	c.mu.RLock()
	b, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return b
	}

	b = Compute(prop, ratios)

	c.mu.Lock()
	c.entries[key] = b
	c.mu.Unlock()
	return b
}

// Len reports how many distinct input sets are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops all cached breakdowns.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]Breakdown)
}
