package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper shapes runs with HarfBuzz via go-text/typesetting, picking up
// GPOS kerning that the builtin kern table lookup misses.
//
// Layout positions one glyph per rune, so a run whose shaped glyphs do not map
// one-to-one onto its runes (ligatures, decomposition, reordering) falls back
// to BuiltinShaper advances.
//
// GoTextShaper is safe for concurrent use. Parsed fonts are cached by FontID;
// HarfbuzzShaper instances are pooled because they are not.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[FontID]*font.Font

	fallback BuiltinShaper
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[FontID]*font.Font),
	}
}

// Advances implements Shaper.
func (s *GoTextShaper) Advances(f *Font, px fixed.Int26_6, runes []rune, out []float32) []float32 {
	if len(runes) == 0 {
		return out
	}
	goTextFont, err := s.getOrCreateFont(f)
	if err != nil {
		return s.fallback.Advances(f, px, runes, out)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      px,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	if len(output.Glyphs) != len(runes) {
		return s.fallback.Advances(f, px, runes, out)
	}
	for i, g := range output.Glyphs {
		if g.TextIndex() != i {
			return s.fallback.Advances(f, px, runes, out)
		}
	}
	for _, g := range output.Glyphs {
		out = append(out, fixedToFloat(g.Advance))
	}
	return out
}

func (s *GoTextShaper) getOrCreateFont(f *Font) (*font.Font, error) {
	s.mu.RLock()
	if gf, ok := s.fontCache[f.ID()]; ok {
		s.mu.RUnlock()
		return gf, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gf, ok := s.fontCache[f.ID()]; ok {
		return gf, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(f.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[f.ID()] = face.Font
	return face.Font, nil
}

// ClearCache drops all parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[FontID]*font.Font)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
