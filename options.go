package ggsoft

import (
	"github.com/gogpu/ggsoft/raster"
	"github.com/gogpu/ggsoft/text"
)

// DefaultTextSize is the text size reported by Backend.DefaultSize unless
// overridden with WithDefaultTextSize.
const DefaultTextSize = 20

// Settings holds Backend configuration.
type Settings struct {
	// DefaultTextSize is used for Text primitives and measurements with a
	// non-positive size.
	DefaultTextSize uint16

	// Antialiasing selects how glyph coverage is applied. AntialiasNone
	// renders each glyph pixel fully on or off.
	Antialiasing raster.AntialiasMode

	// GlyphCacheLimit bounds the glyph cache with LRU eviction.
	// 0 keeps every rasterized glyph for the life of the Backend.
	GlyphCacheLimit int

	// Shaper computes glyph advances. nil means text.BuiltinShaper.
	Shaper text.Shaper

	// FallbackFont replaces the built-in Go Regular font for primitive.DefaultFont
	// and for external fonts that fail to parse.
	FallbackFont *text.Font
}

// DefaultSettings returns the default Backend settings.
func DefaultSettings() Settings {
	return Settings{
		DefaultTextSize: DefaultTextSize,
		Antialiasing:    raster.AntialiasGray,
	}
}

// Option configures a Backend during creation.
//
// Example:
//
//	b := ggsoft.NewBackend(
//	    ggsoft.WithDefaultTextSize(16),
//	    ggsoft.WithGlyphCacheLimit(4096),
//	    ggsoft.WithShaper(text.NewGoTextShaper()),
//	)
type Option func(*Settings)

// WithDefaultTextSize sets the size used when a Text primitive has none.
func WithDefaultTextSize(size uint16) Option {
	return func(s *Settings) {
		s.DefaultTextSize = size
	}
}

// WithGlyphCacheLimit bounds the glyph cache to n entries. n <= 0 leaves it
// unbounded.
func WithGlyphCacheLimit(n int) Option {
	return func(s *Settings) {
		s.GlyphCacheLimit = max(n, 0)
	}
}

// WithShaper sets the shaper used for text layout and measurement.
func WithShaper(sh text.Shaper) Option {
	return func(s *Settings) {
		s.Shaper = sh
	}
}

// WithFallbackFont replaces the built-in fallback font.
func WithFallbackFont(f *text.Font) Option {
	return func(s *Settings) {
		s.FallbackFont = f
	}
}

// WithTextAntialias selects glyph antialiasing.
func WithTextAntialias(mode raster.AntialiasMode) Option {
	return func(s *Settings) {
		s.Antialiasing = mode
	}
}
