package text

import (
	"unicode"

	"github.com/chewxy/math32"
)

// HorizontalAlign positions lines within LayoutSettings.MaxWidth.
type HorizontalAlign uint8

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft HorizontalAlign = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// VerticalAlign positions the block of lines within LayoutSettings.MaxHeight.
type VerticalAlign uint8

const (
	// AlignTop places the first line at the top (default).
	AlignTop VerticalAlign = iota
	// AlignMiddle centers the block vertically.
	AlignMiddle
	// AlignBottom places the last line at the bottom.
	AlignBottom
)

// WrapStyle selects where lines may break when MaxWidth is exceeded.
type WrapStyle uint8

const (
	// WrapWord breaks after whitespace, falling back to a letter break when a
	// single word is wider than the line.
	WrapWord WrapStyle = iota
	// WrapLetter breaks before any glyph.
	WrapLetter
)

// CoordinateSystem selects the direction of the Y axis.
type CoordinateSystem uint8

const (
	// PositiveYDown places later lines at larger Y (screen space).
	PositiveYDown CoordinateSystem = iota
	// PositiveYUp places later lines at smaller Y.
	PositiveYUp
)

// LayoutSettings configures LayoutHorizontal.
type LayoutSettings struct {
	// X and Y are the top-left corner of the layout box. With PositiveYUp,
	// lines stack toward smaller Y starting at Y.
	X, Y float32

	// MaxWidth is the line width available for wrapping and horizontal
	// alignment. 0 disables both.
	MaxWidth float32
	// MaxHeight is the height available for vertical alignment. 0 disables it.
	// Lines are never dropped for exceeding it.
	MaxHeight float32

	HorizontalAlign HorizontalAlign
	VerticalAlign   VerticalAlign
	WrapStyle       WrapStyle

	// WrapHardBreaks starts a new line at '\n'.
	WrapHardBreaks bool
	// IncludeWhitespace keeps whitespace glyphs in the output.
	IncludeWhitespace bool

	CoordinateSystem CoordinateSystem
}

// DefaultLayoutSettings returns left/top aligned, word-wrapped settings that
// honor hard breaks.
func DefaultLayoutSettings() LayoutSettings {
	return LayoutSettings{
		WrapStyle:      WrapWord,
		WrapHardBreaks: true,
	}
}

// TextStyle is one run of text in a single font and size.
type TextStyle struct {
	Text string
	// Size is the font size in pixels per em.
	Size float32
	// FontIndex selects the font from the slice passed to LayoutHorizontal.
	FontIndex int
}

// GlyphPosition is a placed glyph.
type GlyphPosition struct {
	Key RasterKey
	// X and Y locate the top-left corner of the glyph bitmap, snapped to
	// whole pixels. With PositiveYUp, Y is the bitmap's top edge in that
	// coordinate system.
	X, Y          float32
	Width, Height int
	// Parent is the character the glyph was produced from.
	Parent rune
	// ByteOffset is the offset of Parent within its TextStyle's Text.
	ByteOffset int
	// Line is the index of the line holding the glyph.
	Line int
}

// Layout positions glyphs into lines. The zero value is ready to use and
// shapes with BuiltinShaper. Scratch buffers are reused between calls, so a
// Layout is not safe for concurrent use.
type Layout struct {
	// Shaper computes advances. nil means BuiltinShaper.
	Shaper Shaper

	glyphs   []layoutGlyph
	lines    []layoutLine
	runes    []rune
	offsets  []int
	advances []float32
	height   float32
}

type layoutGlyph struct {
	font       *Font
	key        RasterKey
	metrics    Metrics
	line       LineMetrics
	byteOffset int
	advance    float32
	// x is the pen position relative to the start of the glyph's line.
	x         float32
	space     bool
	hardBreak bool
}

type layoutLine struct {
	start, end int
	width      float32
	metrics    LineMetrics
}

// NewLayout returns a Layout that shapes with s.
func NewLayout(s Shaper) *Layout {
	return &Layout{Shaper: s}
}

// Height returns the total height of the lines produced by the last call to
// LayoutHorizontal.
func (l *Layout) Height() float32 {
	return l.height
}

// Lines returns the number of lines produced by the last call to
// LayoutHorizontal.
func (l *Layout) Lines() int {
	return len(l.lines)
}

// LayoutHorizontal lays out styles left to right, appends the placed glyphs to
// out and returns it. Styles with an out-of-range FontIndex or a non-positive
// Size are skipped.
func (l *Layout) LayoutHorizontal(fonts []*Font, styles []TextStyle, settings LayoutSettings, out []GlyphPosition) []GlyphPosition {
	l.glyphs = l.glyphs[:0]
	l.lines = l.lines[:0]
	l.height = 0

	for _, style := range styles {
		if style.FontIndex < 0 || style.FontIndex >= len(fonts) || fonts[style.FontIndex] == nil {
			continue
		}
		l.appendStyle(fonts[style.FontIndex], style)
	}
	if len(l.glyphs) == 0 {
		return out
	}

	l.breakLines(settings)
	return l.place(settings, out)
}

func (l *Layout) shaper() Shaper {
	if l.Shaper == nil {
		return BuiltinShaper{}
	}
	return l.Shaper
}

func (l *Layout) appendStyle(f *Font, style TextStyle) {
	px := floatToFixed(style.Size)
	if px <= 0 || style.Text == "" {
		return
	}

	l.runes, l.offsets = l.runes[:0], l.offsets[:0]
	for i, r := range style.Text {
		l.runes = append(l.runes, r)
		l.offsets = append(l.offsets, i)
	}
	l.advances = l.shaper().Advances(f, px, l.runes, l.advances[:0])

	lm := f.LineMetrics(px)
	id := f.ID()
	for i, r := range l.runes {
		g := layoutGlyph{
			font:       f,
			key:        RasterKey{Char: r, Px: px, Font: id},
			line:       lm,
			byteOffset: l.offsets[i],
			space:      unicode.IsSpace(r),
			hardBreak:  r == '\n',
		}
		if i < len(l.advances) {
			g.advance = l.advances[i]
		}
		switch {
		case g.hardBreak:
			g.advance = 0
		case unicode.IsControl(r):
		default:
			g.metrics = f.GlyphMetrics(r, px)
		}
		l.glyphs = append(l.glyphs, g)
	}
}

// breakLines assigns every glyph to a line with greedy line breaking.
func (l *Layout) breakLines(settings LayoutSettings) {
	var (
		start     int
		x         float32
		lastBreak = -1
	)

	for i := range l.glyphs {
		g := &l.glyphs[i]

		if g.hardBreak && settings.WrapHardBreaks {
			g.x = x
			l.closeLine(start, i+1)
			start, x, lastBreak = i+1, 0, -1
			continue
		}

		if settings.MaxWidth > 0 && !g.space && i > start && x+g.advance > settings.MaxWidth {
			if settings.WrapStyle == WrapWord && lastBreak > start && !l.blank(start, lastBreak) {
				l.closeLine(start, lastBreak)
				shift := x
				if lastBreak < i {
					shift = l.glyphs[lastBreak].x
				}
				for j := lastBreak; j < i; j++ {
					l.glyphs[j].x -= shift
				}
				start = lastBreak
				x -= shift
			}
			// A word longer than the line is broken between letters.
			if i > start && x+g.advance > settings.MaxWidth {
				l.closeLine(start, i)
				start, x = i, 0
			}
			lastBreak = -1
		}

		g.x = x
		x += g.advance
		if g.space {
			lastBreak = i + 1
		}
	}

	switch n := len(l.glyphs); {
	case start < n:
		l.closeLine(start, n)
	case l.glyphs[n-1].hardBreak && settings.WrapHardBreaks:
		// Text ending in a hard break has an empty last line.
		l.lines = append(l.lines, layoutLine{start: n, end: n, metrics: l.glyphs[n-1].line})
	}
}

// blank reports whether glyphs [start,end) are all whitespace.
func (l *Layout) blank(start, end int) bool {
	for i := start; i < end; i++ {
		if !l.glyphs[i].space {
			return false
		}
	}
	return true
}

func (l *Layout) closeLine(start, end int) {
	line := layoutLine{start: start, end: end}
	for i := start; i < end; i++ {
		line.metrics = line.metrics.union(l.glyphs[i].line)
	}
	// Trailing whitespace does not count toward the aligned width.
	for i := end - 1; i >= start; i-- {
		if g := l.glyphs[i]; !g.space {
			line.width = g.x + g.advance
			break
		}
	}
	l.lines = append(l.lines, line)
}

func (l *Layout) place(settings LayoutSettings, out []GlyphPosition) []GlyphPosition {
	for _, line := range l.lines {
		l.height += line.metrics.Height()
	}

	var offsetY float32
	if settings.MaxHeight > 0 {
		switch settings.VerticalAlign {
		case AlignMiddle:
			offsetY = max((settings.MaxHeight-l.height)/2, 0)
		case AlignBottom:
			offsetY = max(settings.MaxHeight-l.height, 0)
		}
	}

	var top float32
	for li, line := range l.lines {
		var offsetX float32
		if settings.MaxWidth > 0 {
			switch settings.HorizontalAlign {
			case AlignCenter:
				offsetX = max((settings.MaxWidth-line.width)/2, 0)
			case AlignRight:
				offsetX = max(settings.MaxWidth-line.width, 0)
			}
		}

		ascent := line.metrics.Ascent
		for i := line.start; i < line.end; i++ {
			g := &l.glyphs[i]
			if g.space && !settings.IncludeWhitespace {
				continue
			}

			x := settings.X + offsetX + g.x + float32(g.metrics.XMin)
			var y float32
			if settings.CoordinateSystem == PositiveYUp {
				baseline := settings.Y - offsetY - top - ascent
				y = baseline + float32(g.metrics.top())
			} else {
				baseline := settings.Y + offsetY + top + ascent
				y = baseline - float32(g.metrics.top())
			}

			out = append(out, GlyphPosition{
				Key:        g.key,
				X:          snap(x),
				Y:          snap(y),
				Width:      g.metrics.Width,
				Height:     g.metrics.Height,
				Parent:     g.key.Char,
				ByteOffset: g.byteOffset,
				Line:       li,
			})
		}
		top += line.metrics.Height()
	}
	return out
}

// snap rounds v to the nearest whole pixel.
func snap(v float32) float32 {
	return math32.Floor(v + 0.5)
}
