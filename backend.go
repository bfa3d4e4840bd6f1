package ggsoft

import (
	"fmt"
	"image"
	"sync"

	"github.com/chewxy/math32"

	"github.com/gogpu/ggsoft/primitive"
	"github.com/gogpu/ggsoft/raster"
	"github.com/gogpu/ggsoft/text"
)

// Backend renders primitive trees and measures text.
//
// Backend is safe for concurrent use; Draw and Measure calls serialize on an
// internal mutex.
type Backend struct {
	mu sync.Mutex

	settings Settings
	fallback *text.Font
	glyphs   *text.GlyphCache

	// fonts memoizes external fonts by name. Failed parses are not stored.
	fonts     map[string]*text.Font
	parseFont func([]byte) (*text.Font, error)

	layout    *text.Layout
	positions []text.GlyphPosition
	pixels    []uint32
	coverage  []byte
}

// NewBackend creates a Backend.
func NewBackend(opts ...Option) *Backend {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return NewBackendWithSettings(s)
}

// NewBackendWithSettings creates a Backend from explicit settings.
func NewBackendWithSettings(s Settings) *Backend {
	if s.DefaultTextSize == 0 {
		s.DefaultTextSize = DefaultTextSize
	}
	fallback := s.FallbackFont
	if fallback == nil {
		fallback = text.FallbackFont()
	}

	b := &Backend{
		settings:  s,
		fallback:  fallback,
		glyphs:    text.NewGlyphCacheWithConfig(text.GlyphCacheConfig{MaxEntries: s.GlyphCacheLimit}),
		fonts:     map[string]*text.Font{IconFontName: text.MonoFont()},
		parseFont: text.ParseFont,
		layout:    text.NewLayout(s.Shaper),
	}
	return b
}

// Close releases the fonts parsed from External font data. They are parsed
// again on next use.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for name, f := range b.fonts {
		if name == IconFontName {
			continue
		}
		_ = f.Close()
		delete(b.fonts, name)
	}
	return nil
}

// Settings returns the Backend's settings.
func (b *Backend) Settings() Settings {
	return b.settings
}

// GlyphCache returns the cache of rasterized glyphs.
func (b *Backend) GlyphCache() *text.GlyphCache {
	return b.glyphs
}

// Draw paints prim onto canvas, then each overlay string as white 14-unit
// text in the top-left corner. It returns cursor unchanged.
//
// Draw leaves the canvas's clip and transform as it found them.
func (b *Backend) Draw(canvas Canvas, viewport Viewport, prim primitive.Primitive, cursor primitive.Interaction, overlay []string) primitive.Interaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := drawState{b: b, canvas: canvas, scale: viewport.Scale()}
	d.draw(prim)

	size := viewport.LogicalSize()
	for _, s := range overlay {
		d.draw(primitive.Text{
			Content: s,
			Bounds:  primitive.Rect(0, 0, size.Width, size.Height),
			Color:   primitive.White,
			Size:    14,
			Font:    primitive.DefaultFont,
		})
	}
	return cursor
}

// drawState is the state of one Draw call.
type drawState struct {
	b      *Backend
	canvas Canvas
	scale  float32
}

func (d *drawState) draw(prim primitive.Primitive) {
	switch p := prim.(type) {
	case nil, primitive.None:
	case primitive.Group:
		for _, child := range p.Primitives {
			d.draw(child)
		}
	case primitive.Text:
		d.drawText(p)
	case primitive.Quad:
		d.drawQuad(p)
	case primitive.Clip:
		d.drawClip(p)
	case primitive.Translate:
		d.drawTranslate(p)
	case primitive.Cached:
		d.draw(p.Cache)
	case primitive.Image, primitive.Svg, primitive.Mesh2D:
		Logger().Debug("ggsoft: primitive not rendered", "type", typeName(p))
	default:
		Logger().Debug("ggsoft: unknown primitive", "type", typeName(p))
	}
}

// drawClip clips to the bounds, translates the content to the bounds'
// origin plus the scroll offset, and restores both afterwards.
func (d *drawState) drawClip(c primitive.Clip) {
	prev := d.canvas.Transform()
	d.canvas.PushClipRect(deviceRect(prev, c.Bounds))
	defer func() {
		d.canvas.SetTransform(prev)
		d.canvas.PopClip()
	}()

	d.canvas.SetTransform(prev.PreTranslate(c.Bounds.X+c.Offset.X, c.Bounds.Y+c.Offset.Y))
	d.draw(c.Content)
}

func (d *drawState) drawTranslate(t primitive.Translate) {
	prev := d.canvas.Transform()
	defer d.canvas.SetTransform(prev)

	d.canvas.SetTransform(prev.PreTranslate(t.Translation.X, t.Translation.Y))
	d.draw(t.Content)
}

// deviceRect maps r through t and returns the enclosing pixel rectangle.
func deviceRect(t raster.Transform, r primitive.Rectangle) image.Rectangle {
	x0, y0 := t.TransformPoint(r.X, r.Y)
	x1, y1 := t.TransformPoint(r.MaxX(), r.MaxY())
	x2, y2 := t.TransformPoint(r.X, r.MaxY())
	x3, y3 := t.TransformPoint(r.MaxX(), r.Y)

	minX := math32.Min(math32.Min(x0, x1), math32.Min(x2, x3))
	minY := math32.Min(math32.Min(y0, y1), math32.Min(y2, y3))
	maxX := math32.Max(math32.Max(x0, x1), math32.Max(x2, x3))
	maxY := math32.Max(math32.Max(y0, y1), math32.Max(y2, y3))

	return image.Rect(
		int(math32.Floor(minX)), int(math32.Floor(minY)),
		int(math32.Floor(maxX)), int(math32.Floor(maxY)),
	)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
