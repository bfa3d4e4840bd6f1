package text

import (
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/image/math/fixed"
)

// countingRasterizer returns a 1x1 mask holding the rune's low byte.
type countingRasterizer struct {
	calls atomic.Int64
}

func (c *countingRasterizer) Rasterize(r rune, px fixed.Int26_6) (Metrics, []byte) {
	c.calls.Add(1)
	return Metrics{Width: 1, Height: 1, AdvanceWidth: float32(px) / 64}, []byte{byte(r)}
}

func TestGlyphCacheMemoizes(t *testing.T) {
	c := NewGlyphCache()
	r := &countingRasterizer{}
	key := NewRasterKey('a', 16, 1)

	first := c.GetOrRasterize(r, key)
	second := c.GetOrRasterize(r, key)

	if r.calls.Load() != 1 {
		t.Errorf("rasterizer called %d times, want 1", r.calls.Load())
	}
	if first.Metrics != second.Metrics || &first.Coverage[0] != &second.Coverage[0] {
		t.Error("second lookup returned a different glyph")
	}
	if first.Coverage[0] != 'a' || first.Metrics.AdvanceWidth != 16 {
		t.Errorf("glyph = %+v", first)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Len != 1 {
		t.Errorf("Stats = %+v, want 1 hit, 1 miss, 1 entry", stats)
	}
}

func TestGlyphCacheKeyFields(t *testing.T) {
	c := NewGlyphCache()
	r := &countingRasterizer{}

	keys := []RasterKey{
		NewRasterKey('a', 16, 1),
		NewRasterKey('b', 16, 1),
		NewRasterKey('a', 17, 1),
		NewRasterKey('a', 16, 2),
		NewRasterKey('a', 16.5, 1),
	}
	for _, k := range keys {
		c.GetOrRasterize(r, k)
	}
	if c.Len() != len(keys) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(keys))
	}
	if got := r.calls.Load(); got != int64(len(keys)) {
		t.Errorf("rasterizer called %d times, want %d", got, len(keys))
	}
	if NewRasterKey('a', 16, 1) != keys[0] {
		t.Error("equal inputs should produce equal keys")
	}
	if keys[4].Size() != 16.5 {
		t.Errorf("Size() = %v, want 16.5", keys[4].Size())
	}
}

func TestGlyphCacheBounded(t *testing.T) {
	c := NewGlyphCacheWithConfig(GlyphCacheConfig{MaxEntries: 2})
	r := &countingRasterizer{}

	a, b, d := NewRasterKey('a', 16, 1), NewRasterKey('b', 16, 1), NewRasterKey('d', 16, 1)
	c.GetOrRasterize(r, a)
	c.GetOrRasterize(r, b)
	c.GetOrRasterize(r, a) // a is now most recent
	c.GetOrRasterize(r, d) // evicts b

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if !c.Contains(a) || c.Contains(b) || !c.Contains(d) {
		t.Error("least recently used glyph should have been evicted")
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestGlyphCacheClear(t *testing.T) {
	c := NewGlyphCache()
	r := &countingRasterizer{}
	key := NewRasterKey('x', 12, 7)

	c.GetOrRasterize(r, key)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.GetOrRasterize(r, key)
	if r.calls.Load() != 2 {
		t.Errorf("rasterizer called %d times, want 2", r.calls.Load())
	}
}

func TestGlyphCacheConcurrent(t *testing.T) {
	c := NewGlyphCache()
	r := &countingRasterizer{}
	key := NewRasterKey('z', 20, 3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.GetOrRasterize(r, key)
			}
		}()
	}
	wg.Wait()

	if r.calls.Load() != 1 {
		t.Errorf("rasterizer called %d times, want 1", r.calls.Load())
	}
}

func TestGlyphCacheWithFont(t *testing.T) {
	c := NewGlyphCache()
	f := FallbackFont()
	key := NewRasterKey('g', 24, f.ID())

	g := c.GetOrRasterize(f, key)
	want, _ := f.Rasterize('g', key.Px)
	if g.Metrics != want {
		t.Errorf("cached metrics = %+v, want %+v", g.Metrics, want)
	}
	if g.Metrics.YMin >= 0 {
		t.Errorf("'g' YMin = %d, want a descender below the baseline", g.Metrics.YMin)
	}
}

func BenchmarkGlyphCacheHit(b *testing.B) {
	c := NewGlyphCache()
	f := FallbackFont()
	key := NewRasterKey('A', 16, f.ID())
	c.GetOrRasterize(f, key)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrRasterize(f, key)
	}
}
