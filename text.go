package ggsoft

import (
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggsoft/primitive"
	"github.com/gogpu/ggsoft/raster"
	"github.com/gogpu/ggsoft/text"
)

// IconFontName is the name under which IconFont is registered.
const IconFontName = "ggsoft-icons"

// Icon characters available in IconFont.
const (
	// CheckmarkIcon is drawn inside checked checkboxes.
	CheckmarkIcon = '√'
	// ArrowDownIcon is drawn on pick lists.
	ArrowDownIcon = '▼'
)

// drawText lays out t in device pixels and composites each glyph.
func (d *drawState) drawText(t primitive.Text) {
	b := d.b
	f := b.resolveFont(t.Font)
	s := d.scale

	settings := text.LayoutSettings{
		X:               t.Bounds.X * s,
		Y:               t.Bounds.Y * s,
		MaxWidth:        extent(t.Bounds.Width) * s,
		MaxHeight:       extent(t.Bounds.Height) * s,
		HorizontalAlign: horizontalAlign(t.HorizontalAlignment),
		VerticalAlign:   verticalAlign(t.VerticalAlignment),
		WrapStyle:       text.WrapWord,
		WrapHardBreaks:  true,
	}
	style := text.TextStyle{
		Text: norm.NFC.String(t.Content),
		Size: b.textSize(t.Size) * s,
	}
	b.positions = b.layout.LayoutHorizontal([]*text.Font{f}, []text.TextStyle{style}, settings, b.positions[:0])

	opts := &raster.DrawOptions{BlendMode: raster.BlendSrcOver, Alpha: 1, Antialias: raster.AntialiasGray}
	for _, pos := range b.positions {
		miss := !b.glyphs.Contains(pos.Key)
		g := b.glyphs.GetOrRasterize(f, pos.Key)
		if miss {
			Logger().Debug("ggsoft: glyph rasterized", "char", string(pos.Key.Char), "px", pos.Key.Size())
		}
		if g.Metrics.Width == 0 || g.Metrics.Height == 0 {
			continue
		}

		coverage := g.Coverage
		if b.settings.Antialiasing == raster.AntialiasNone {
			b.coverage = hardenCoverage(b.coverage[:0], coverage)
			coverage = b.coverage
		}
		b.pixels = ComposeCoverage(b.pixels[:0], t.Color, coverage)
		d.canvas.DrawImageAt(pos.X, pos.Y, &raster.Image{
			Width:  g.Metrics.Width,
			Height: g.Metrics.Height,
			Data:   b.pixels,
		}, opts)
	}
}

// resolveFont returns the parsed font for f. External fonts are parsed on
// first use and memoized by name; a font that fails to parse is replaced by
// the fallback and parsed again next time.
func (b *Backend) resolveFont(f primitive.Font) *text.Font {
	if f.IsDefault() {
		return b.fallback
	}
	if parsed, ok := b.fonts[f.Name]; ok {
		return parsed
	}
	parsed, err := b.parseFont(f.Bytes)
	if err != nil {
		Logger().Warn("using fallback font", "name", f.Name, "err", err)
		return b.fallback
	}
	b.fonts[f.Name] = parsed
	return parsed
}

func (b *Backend) textSize(size float32) float32 {
	if size > 0 {
		return size
	}
	return float32(b.settings.DefaultTextSize)
}

// extent converts a layout bound to LayoutSettings form, where 0 means
// unbounded. Hosts pass +Inf for unconstrained measurements.
func extent(v float32) float32 {
	if v <= 0 || v > math.MaxFloat32 || v != v {
		return 0
	}
	return v
}

func horizontalAlign(a primitive.HorizontalAlignment) text.HorizontalAlign {
	switch a {
	case primitive.AlignCenter:
		return text.AlignCenter
	case primitive.AlignRight:
		return text.AlignRight
	default:
		return text.AlignLeft
	}
}

func verticalAlign(a primitive.VerticalAlignment) text.VerticalAlign {
	switch a {
	case primitive.AlignMiddle:
		return text.AlignMiddle
	case primitive.AlignBottom:
		return text.AlignBottom
	default:
		return text.AlignTop
	}
}
