package ggsoft

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/ggsoft/primitive"
)

// ComposeCoverage appends one packed 0xAARRGGBB pixel per coverage byte to dst
// and returns it. Each channel is floor(channel * coverage), with the color's
// channels clamped to [0, 1], which premultiplies the color by the coverage
// but not by its own alpha. With A < 1 a channel can exceed alpha;
// raster.DrawTarget.ToImage clamps such pixels on export.
func ComposeCoverage(dst []uint32, c primitive.Color, coverage []byte) []uint32 {
	a, r, g, b := clamp01(c.A), clamp01(c.R), clamp01(c.G), clamp01(c.B)
	for _, cov := range coverage {
		f := float32(cov)
		dst = append(dst,
			uint32(math32.Floor(a*f))<<24|
				uint32(math32.Floor(r*f))<<16|
				uint32(math32.Floor(g*f))<<8|
				uint32(math32.Floor(b*f)))
	}
	return dst
}

func clamp01(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	default:
		// Also maps NaN to 0.
		return 0
	}
}

// hardenCoverage maps coverage to fully on or off at 50%.
func hardenCoverage(dst, coverage []byte) []byte {
	for _, c := range coverage {
		if c >= 128 {
			dst = append(dst, 255)
		} else {
			dst = append(dst, 0)
		}
	}
	return dst
}
