package spatial

import "sync"

// CacheKey is a caller-chosen (id1,id2) tag letting the core reuse a
// previously built index for the same mesh across multiple drape calls
// without rebuilding.
type CacheKey struct {
	ID1, ID2 int64
}

// Cache holds built indices keyed by CacheKey. It is not safe for
// concurrent use from multiple engine instances sharing one mesh (
// forbids sharing an engine instance across threads; the cache inherits
// that restriction, and the mutex here only guards against the cache
// itself being touched from a finalizer or debug goroutine).
type Cache struct {
	mu      sync.Mutex
	entries map[CacheKey]any
}

// NewCache creates an empty index cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[CacheKey]any)}
}

// Get returns the cached entry for key, if any.
func (c *Cache) Get(key CacheKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores an entry under key, overwriting any prior value.
func (c *Cache) Put(key CacheKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Release frees the cached entry for key. Spec §5 requires the caller to
// call this explicitly because the engine cannot know when the external
// mesh arrays backing the index go out of scope.
func (c *Cache) Release(key CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// ReleaseAll drops every cached entry.
func (c *Cache) ReleaseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]any)
}
