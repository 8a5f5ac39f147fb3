package colormap

import "sync"

// Cache memoizes lookup tables per scheme. The zero value is ready to
// use. Tables are computed once per scheme and shared by reference
// afterwards. Safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	tables map[Scheme]*Table
}

// NewCache returns an empty table cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[Scheme]*Table)}
}

// Get returns the lookup table for the scheme, computing it on first use.
// Repeated calls with the same scheme return the identical table.
func (c *Cache) Get(s Scheme) *Table {
	c.mu.RLock()
	tbl, ok := c.tables[s]
	c.mu.RUnlock()

	if ok {
		return tbl
	}

	computed := NewTable(s)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tables == nil {
		c.tables = make(map[Scheme]*Table)
	}

	// Another goroutine may have filled the scheme meanwhile; keep the
	// first entry so the identical-table guarantee holds.
	if tbl, ok := c.tables[s]; ok {
		return tbl
	}

	c.tables[s] = computed

	return computed
}

// Clear removes all cached tables.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tables = make(map[Scheme]*Table)
}

// Len reports the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}

var defaultCache = NewCache()

// Lookup returns the scheme's table from the process-wide default cache.
func Lookup(s Scheme) *Table {
	return defaultCache.Get(s)
}

// ClearCache removes all entries from the process-wide default cache.
func ClearCache() {
	defaultCache.Clear()
}
