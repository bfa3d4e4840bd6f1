package ggsoft

import (
	"testing"

	"github.com/gogpu/ggsoft/raster"
	"github.com/gogpu/ggsoft/text"
)

func TestDefaultSettings(t *testing.T) {
	b := NewBackend()
	s := b.Settings()
	if s.DefaultTextSize != DefaultTextSize {
		t.Errorf("DefaultTextSize = %d, want %d", s.DefaultTextSize, DefaultTextSize)
	}
	if s.Antialiasing != raster.AntialiasGray {
		t.Errorf("Antialiasing = %v, want AntialiasGray", s.Antialiasing)
	}
	if s.GlyphCacheLimit != 0 || s.Shaper != nil || s.FallbackFont != nil {
		t.Errorf("unexpected defaults %+v", s)
	}
	if b.DefaultSize() != DefaultTextSize {
		t.Errorf("DefaultSize() = %d, want %d", b.DefaultSize(), DefaultTextSize)
	}
}

func TestOptions(t *testing.T) {
	shaper := text.NewGoTextShaper()
	mono := text.MonoFont()
	b := NewBackend(
		WithDefaultTextSize(12),
		WithGlyphCacheLimit(64),
		WithShaper(shaper),
		WithFallbackFont(mono),
		WithTextAntialias(raster.AntialiasNone),
	)
	s := b.Settings()

	if s.DefaultTextSize != 12 {
		t.Errorf("DefaultTextSize = %d, want 12", s.DefaultTextSize)
	}
	if s.GlyphCacheLimit != 64 {
		t.Errorf("GlyphCacheLimit = %d, want 64", s.GlyphCacheLimit)
	}
	if s.Shaper != shaper || b.layout.Shaper != shaper {
		t.Error("WithShaper was not applied")
	}
	if b.fallback != mono {
		t.Error("WithFallbackFont was not applied")
	}
	if s.Antialiasing != raster.AntialiasNone {
		t.Errorf("Antialiasing = %v, want AntialiasNone", s.Antialiasing)
	}
}

func TestWithGlyphCacheLimitNegative(t *testing.T) {
	b := NewBackend(WithGlyphCacheLimit(-5))
	if got := b.Settings().GlyphCacheLimit; got != 0 {
		t.Errorf("GlyphCacheLimit = %d, want 0", got)
	}
}

func TestZeroDefaultTextSize(t *testing.T) {
	b := NewBackend(WithDefaultTextSize(0))
	if b.DefaultSize() != DefaultTextSize {
		t.Errorf("DefaultSize() = %d, want %d", b.DefaultSize(), DefaultTextSize)
	}
}
