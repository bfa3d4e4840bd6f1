// Package cache provides the bounded LRU map used by the glyph cache.
//
// An LRU with capacity 0 never evicts, which is how the backend keeps every
// rasterized glyph for its lifetime unless a limit is configured.
//
//	c := cache.NewLRU[rune, int](128)
//	v, created := c.GetOrCreate('a', func() int { return 1 })
//
// LRU is not safe for concurrent use; callers hold their own lock.
package cache
