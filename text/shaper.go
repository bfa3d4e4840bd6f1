package text

import "golang.org/x/image/math/fixed"

// Shaper computes horizontal pen advances for a run of runes in one font.
//
// Advances appends one advance per rune to out and returns it. The advance of
// rune i includes any kerning between rune i and rune i+1.
type Shaper interface {
	Advances(f *Font, px fixed.Int26_6, runes []rune, out []float32) []float32
}

// BuiltinShaper uses the font's horizontal metrics and kern table.
// It does not apply ligatures or contextual substitutions.
type BuiltinShaper struct{}

// Advances implements Shaper.
func (BuiltinShaper) Advances(f *Font, px fixed.Int26_6, runes []rune, out []float32) []float32 {
	for i, r := range runes {
		adv := f.Advance(r, px)
		if i+1 < len(runes) {
			adv += f.Kern(r, runes[i+1], px)
		}
		out = append(out, adv)
	}
	return out
}
