package primitive

// Color is a non-premultiplied color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// FromRGB returns an opaque color.
func FromRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromRGBA returns a color with the given alpha.
func FromRGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromRGB8 returns an opaque color from 8-bit components.
func FromRGB8(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// RGBA8 converts the color to 8-bit components by truncation.
// Components outside [0, 1] are clamped first.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v * 255)
	}
}

// Background is how the inside of a Quad is painted.
// Only solid colors are supported.
type Background interface {
	isBackground()
}

// BackgroundColor paints a solid color.
type BackgroundColor struct {
	Color Color
}

func (BackgroundColor) isBackground() {}
