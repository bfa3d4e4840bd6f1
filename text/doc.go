// Package text provides font parsing, glyph rasterization, a glyph bitmap
// cache and a line-breaking text layout engine for the software renderer.
//
// The pipeline has three parts:
//
//   - Font: a parsed TrueType/OpenType font (golang.org/x/image/font/opentype)
//     that reports metrics and rasterizes single glyphs to coverage masks.
//   - GlyphCache: memoizes rasterized glyphs by RasterKey (character, pixel
//     size, font).
//   - Layout: positions glyphs into lines with wrapping and alignment. Advances
//     come from a Shaper, either the builtin sfnt advances or HarfBuzz shaping
//     from github.com/go-text/typesetting.
//
// # Example usage
//
//	f, err := text.ParseFont(ttf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var l text.Layout
//	glyphs := l.LayoutHorizontal([]*text.Font{f},
//	    []text.TextStyle{{Text: "Hello", Size: 16}},
//	    text.LayoutSettings{MaxWidth: 200}, nil)
//
//	cache := text.NewGlyphCache()
//	for _, g := range glyphs {
//	    bitmap := cache.GetOrRasterize(f, g.Key)
//	    _ = bitmap // blit at g.X, g.Y
//	}
package text
