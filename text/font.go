package text

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontID identifies a font by its content.
type FontID uint64

// Font is a parsed TrueType/OpenType font.
//
// Sized faces are created lazily and kept until Close.
// Font is safe for concurrent use.
type Font struct {
	id   FontID
	name string
	data []byte
	sf   *opentype.Font

	mu    sync.Mutex
	faces map[fixed.Int26_6]font.Face
}

// ParseFont parses TrueType/OpenType font data.
// The data must not be modified afterwards.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	h := fnv.New64a()
	_, _ = h.Write(data)

	f := &Font{
		id:    FontID(h.Sum64()),
		data:  data,
		sf:    sf,
		faces: make(map[fixed.Int26_6]font.Face),
	}
	if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}
	return f, nil
}

// ID returns the FNV-64a hash of the font data.
func (f *Font) ID() FontID {
	return f.id
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	return f.name
}

// HasGlyph reports whether the font maps r to a real glyph.
func (f *Font) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.sf.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// LineMetrics returns the vertical metrics at px pixels per em.
func (f *Font) LineMetrics(px fixed.Int26_6) LineMetrics {
	face := f.face(px)
	if face == nil {
		return LineMetrics{}
	}
	f.mu.Lock()
	m := face.Metrics()
	f.mu.Unlock()

	asc, desc := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	return LineMetrics{
		Ascent:  asc,
		Descent: desc,
		LineGap: max(fixedToFloat(m.Height)-asc-desc, 0),
	}
}

// GlyphMetrics returns the metrics of r at px without rasterizing it.
func (f *Font) GlyphMetrics(r rune, px fixed.Int26_6) Metrics {
	face := f.face(px)
	if face == nil {
		return Metrics{}
	}
	f.mu.Lock()
	bounds, advance, ok := face.GlyphBounds(r)
	f.mu.Unlock()
	if !ok {
		return Metrics{}
	}
	return glyphMetrics(bounds, advance)
}

// Advance returns the pen advance of r at px.
func (f *Font) Advance(r rune, px fixed.Int26_6) float32 {
	face := f.face(px)
	if face == nil {
		return 0
	}
	f.mu.Lock()
	adv, _ := face.GlyphAdvance(r)
	f.mu.Unlock()
	return fixedToFloat(adv)
}

// Kern returns the kerning adjustment between r0 and r1 at px.
func (f *Font) Kern(r0, r1 rune, px fixed.Int26_6) float32 {
	face := f.face(px)
	if face == nil {
		return 0
	}
	f.mu.Lock()
	k := face.Kern(r0, r1)
	f.mu.Unlock()
	return fixedToFloat(k)
}

// Rasterize renders r at px into a coverage mask, one byte per pixel,
// row-major, Width*Height long. A rune missing from the font renders as the
// font's notdef glyph.
func (f *Font) Rasterize(r rune, px fixed.Int26_6) (Metrics, []byte) {
	face := f.face(px)
	if face == nil {
		return Metrics{}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	bounds, advance, ok := face.GlyphBounds(r)
	if !ok {
		return Metrics{}, nil
	}
	m := glyphMetrics(bounds, advance)
	if m.Width == 0 || m.Height == 0 {
		return m, nil
	}

	// The face's mask is reused between calls, so copy it out. The
	// destination covers the metrics box; ink outside it is clipped.
	dst := image.NewAlpha(pixelBox(bounds))
	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if ok {
		draw.Draw(dst, dr, mask, maskp, draw.Src)
	}
	return m, dst.Pix
}

// face returns the sized face for px, creating it on first use.
func (f *Font) face(px fixed.Int26_6) font.Face {
	if px <= 0 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[px]; ok {
		return face
	}
	face, err := opentype.NewFace(f.sf, &opentype.FaceOptions{
		Size:    fixedToFloat64(px),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	f.faces[px] = face
	return face
}

// Close releases the sized faces. The Font stays usable and recreates faces
// on demand.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for px, face := range f.faces {
		_ = face.Close()
		delete(f.faces, px)
	}
	return nil
}

// pixelBox returns the whole-pixel box enclosing b, Y down.
func pixelBox(b fixed.Rectangle26_6) image.Rectangle {
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

func glyphMetrics(b fixed.Rectangle26_6, advance fixed.Int26_6) Metrics {
	box := pixelBox(b)
	return Metrics{
		XMin:         box.Min.X,
		YMin:         -box.Max.Y,
		Width:        box.Dx(),
		Height:       box.Dy(),
		AdvanceWidth: fixedToFloat(advance),
		Bounds: Bounds{
			XMin:   fixedToFloat(b.Min.X),
			YMin:   -fixedToFloat(b.Max.Y),
			Width:  fixedToFloat(b.Max.X - b.Min.X),
			Height: fixedToFloat(b.Max.Y - b.Min.Y),
		},
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// floatToFixed converts a pixel size to 26.6 fixed point, rounding to the
// nearest 1/64 pixel. Negative sizes become zero.
func floatToFixed(v float32) fixed.Int26_6 {
	if v <= 0 {
		return 0
	}
	return fixed.Int26_6(v*64 + 0.5)
}

var (
	fallbackOnce = sync.OnceValue(func() *Font { return mustParse(goregular.TTF) })
	monoOnce     = sync.OnceValue(func() *Font { return mustParse(gomono.TTF) })
)

// FallbackFont returns the built-in Go Regular font.
func FallbackFont() *Font {
	return fallbackOnce()
}

// MonoFont returns the built-in Go Mono font.
func MonoFont() *Font {
	return monoOnce()
}

func mustParse(data []byte) *Font {
	f, err := ParseFont(data)
	if err != nil {
		panic(err)
	}
	return f
}
