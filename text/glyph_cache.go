package text

import (
	"sync"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggsoft/internal/cache"
)

// RasterKey uniquely identifies one rasterized glyph bitmap.
type RasterKey struct {
	Char rune
	Px   fixed.Int26_6
	Font FontID
}

// NewRasterKey returns the key for char at size pixels per em in font.
func NewRasterKey(char rune, size float32, font FontID) RasterKey {
	return RasterKey{Char: char, Px: floatToFixed(size), Font: font}
}

// Size returns the key's pixel size as a float.
func (k RasterKey) Size() float32 {
	return fixedToFloat(k.Px)
}

// CachedGlyph is a rasterized glyph. It must not be modified.
type CachedGlyph struct {
	Metrics Metrics
	// Coverage holds one byte per pixel, row-major, Width*Height long.
	Coverage []byte
}

// Rasterizer produces glyph coverage masks. *Font implements it.
type Rasterizer interface {
	Rasterize(r rune, px fixed.Int26_6) (Metrics, []byte)
}

// GlyphCacheConfig holds configuration for GlyphCache.
type GlyphCacheConfig struct {
	// MaxEntries bounds the number of cached glyphs with LRU eviction.
	// 0 keeps every glyph for the life of the cache.
	MaxEntries int
}

// GlyphCacheStats holds cache statistics.
type GlyphCacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// GlyphCache memoizes rasterized glyphs by RasterKey.
//
// GlyphCache is safe for concurrent use. Lookup and insertion happen under one
// lock, so a key is rasterized at most once while it stays cached.
type GlyphCache struct {
	mu      sync.Mutex
	entries *cache.LRU[RasterKey, CachedGlyph]
}

// NewGlyphCache creates an unbounded glyph cache.
func NewGlyphCache() *GlyphCache {
	return NewGlyphCacheWithConfig(GlyphCacheConfig{})
}

// NewGlyphCacheWithConfig creates a glyph cache with the given configuration.
func NewGlyphCacheWithConfig(config GlyphCacheConfig) *GlyphCache {
	return &GlyphCache{
		entries: cache.NewLRU[RasterKey, CachedGlyph](max(config.MaxEntries, 0)),
	}
}

// GetOrRasterize returns the cached glyph for key, rasterizing it with r on a
// miss.
func (c *GlyphCache) GetOrRasterize(r Rasterizer, key RasterKey) CachedGlyph {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, _ := c.entries.GetOrCreate(key, func() CachedGlyph {
		m, cov := r.Rasterize(key.Char, key.Px)
		return CachedGlyph{Metrics: m, Coverage: cov}
	})
	return g
}

// Contains reports whether key is cached.
func (c *GlyphCache) Contains(key RasterKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Contains(key)
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *GlyphCache) Stats() GlyphCacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.entries.Stats()
	return GlyphCacheStats{
		Len:       s.Len,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// Clear removes all cached glyphs.
func (c *GlyphCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Clear()
}
