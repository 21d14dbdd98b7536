// Package cache provides a small generic LRU map used to bound the
// glyph mask caches, which otherwise grow with every font size a
// long-lived process touches.
package cache

import (
	"sort"
	"sync"
)

// Cache is a thread-safe map with least-recently-used eviction past a
// soft limit. Inserting beyond the limit evicts in batches down to
// three quarters of it, so steady-state inserts do not evict on every
// call.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    int64
}

// entry pairs a value with the tick of its last access.
type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache holding at most limit entries. A limit of 0
// disables eviction.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Get returns the cached value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores a value, evicting the least recently used entries when
// the soft limit is exceeded.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(key, value)
}

// GetOrCreate returns the cached value for key, calling create and
// caching its result on a miss. create runs under the cache lock, so
// concurrent callers cannot build the same entry twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.tick++
		e.atime = c.tick
		return e.value
	}

	value := create()
	c.put(key, value)
	return value
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// put inserts under the lock and evicts when past the limit.
func (c *Cache[K, V]) put(key K, value V) {
	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}

	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

// evict removes the oldest entries until the cache is at 75% of its
// limit. Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	target := c.limit * 3 / 4
	if target < 1 {
		target = 1
	}
	excess := len(c.entries) - target
	if excess <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })

	for _, a := range all[:excess] {
		delete(c.entries, a.key)
	}
}
