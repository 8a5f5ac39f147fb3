package window

import "sync"

type cacheKey struct {
	typ     Type
	size    int
	variant Variant
}

// Cache memoizes coefficient tables keyed by (type, size, variant).
// The zero value is ready to use. Entries are computed once per key and
// shared by reference afterwards; callers must treat returned slices as
// read-only. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]float64
}

// NewCache returns an empty coefficient cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]float64)}
}

// Get returns the coefficient table for the key, computing it on first use.
// Repeated calls with the same key return the identical slice.
func (c *Cache) Get(t Type, size int, variant Variant) ([]float64, error) {
	key := cacheKey{typ: t, size: size, variant: variant}

	c.mu.RLock()
	coeffs, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		return coeffs, nil
	}

	computed, err := Generate(t, size, variant)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[cacheKey][]float64)
	}

	// Another goroutine may have filled the key meanwhile; keep the first
	// entry so the identical-slice guarantee holds.
	if coeffs, ok := c.entries[key]; ok {
		return coeffs, nil
	}

	c.entries[key] = computed

	return computed, nil
}

// Clear removes all cached coefficient tables.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[cacheKey][]float64)
}

// Len reports the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

var defaultCache = NewCache()

// Get returns coefficients from the process-wide default cache.
func Get(t Type, size int, variant Variant) ([]float64, error) {
	return defaultCache.Get(t, size, variant)
}

// ClearCache removes all entries from the process-wide default cache.
func ClearCache() {
	defaultCache.Clear()
}
