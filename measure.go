package ggsoft

import (
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggsoft/primitive"
	"github.com/gogpu/ggsoft/text"
)

// Measure returns the width and height content occupies when laid out at size
// within bounds, left and top aligned with word wrapping. Width is the right
// edge of the rightmost glyph bitmap; height is the total height of the lines.
// Non-positive or infinite bounds do not constrain the layout.
func (b *Backend) Measure(content string, size float32, font primitive.Font, bounds primitive.Size) (width, height float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := b.resolveFont(font)
	settings := text.LayoutSettings{
		MaxWidth:       extent(bounds.Width),
		MaxHeight:      extent(bounds.Height),
		WrapStyle:      text.WrapWord,
		WrapHardBreaks: true,
	}
	style := text.TextStyle{Text: norm.NFC.String(content), Size: b.textSize(size)}
	b.positions = b.layout.LayoutHorizontal([]*text.Font{f}, []text.TextStyle{style}, settings, b.positions[:0])

	for _, pos := range b.positions {
		width = max(width, pos.X+float32(pos.Width))
	}
	return width, b.layout.Height()
}

// DefaultSize returns the default text size.
func (b *Backend) DefaultSize() uint16 {
	return b.settings.DefaultTextSize
}

// TrimMeasurements is called by hosts between frames. Measurements are not
// cached, so it does nothing.
func (b *Backend) TrimMeasurements() {}

// IconFont returns the font holding CheckmarkIcon and ArrowDownIcon.
func (b *Backend) IconFont() primitive.Font {
	return primitive.External(IconFontName, gomono.TTF)
}

// ImageDimensions reports the size of an image. Images are not decoded, so
// every handle reports 50x50.
func (b *Backend) ImageDimensions(primitive.Handle) (width, height uint32) {
	return 50, 50
}

// SvgViewportDimensions reports the viewport of an SVG. SVGs are not parsed,
// so every handle reports 50x50.
func (b *Backend) SvgViewportDimensions(primitive.Handle) (width, height uint32) {
	return 50, 50
}
