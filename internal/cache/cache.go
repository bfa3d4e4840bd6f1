package cache

// LRU is a map with least-recently-used eviction.
// A capacity of 0 or less means the map grows without bound.
//
// LRU must not be copied after first use.
type LRU[K comparable, V any] struct {
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int

	hits      uint64
	misses    uint64
	evictions uint64
}

// Stats contains LRU counters.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the configured bound (0 = unbounded).
	Capacity int
	// Hits counts lookups that found an entry.
	Hits uint64
	// Misses counts lookups that did not.
	Misses uint64
	// Evictions counts entries dropped to respect Capacity.
	Evictions uint64
}

// NewLRU creates an LRU holding at most capacity entries.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &LRU[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	node, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(node)
	return node.value, true
}

// Set stores value under key, evicting the oldest entries if needed.
func (c *LRU[K, V]) Set(key K, value V) {
	if node, ok := c.entries[key]; ok {
		node.value = value
		c.order.moveToFront(node)
		return
	}
	c.entries[key] = c.order.pushFront(key, value)
	c.evict()
}

// GetOrCreate returns the cached value for key or stores the result of create.
// created reports whether create was called.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) (value V, created bool) {
	if v, ok := c.Get(key); ok {
		return v, false
	}
	value = create()
	c.entries[key] = c.order.pushFront(key, value)
	c.evict()
	return value, true
}

// Contains reports whether key is present without touching recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Delete removes key. It reports whether the key was present.
func (c *LRU[K, V]) Delete(key K) bool {
	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.unlink(node)
	delete(c.entries, key)
	return true
}

// Clear drops every entry. Counters are kept.
func (c *LRU[K, V]) Clear() {
	c.entries = make(map[K]*lruNode[K, V])
	c.order = lruList[K, V]{}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	return len(c.entries)
}

// Capacity returns the configured bound.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the counters.
func (c *LRU[K, V]) Stats() Stats {
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// evict drops least recently used entries until the bound holds.
func (c *LRU[K, V]) evict() {
	if c.capacity <= 0 {
		return
	}
	for len(c.entries) > c.capacity {
		node := c.order.popBack()
		if node == nil {
			return
		}
		delete(c.entries, node.key)
		c.evictions++
	}
}
