// Package blend composites premultiplied ARGB pixels.
//
// Pixels are packed as 0xAARRGGBB with color channels already multiplied by
// alpha, the layout used by raster.DrawTarget.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 divides x by 255 exactly without a division instruction.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// Exact for every product of two bytes, which keeps composited output
// reproducible in tests.
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns a*b/255 for byte operands.
func mulDiv255(a, b uint32) uint32 {
	return div255(a * b)
}

// addClamp adds two channel values and clamps to 255.
func addClamp(a, b uint32) uint32 {
	if s := a + b; s < 255 {
		return s
	}
	return 255
}

// Unpack splits a packed pixel into its channels.
func Unpack(p uint32) (a, r, g, b uint32) {
	return p >> 24, (p >> 16) & 0xff, (p >> 8) & 0xff, p & 0xff
}

// Pack joins channels into a packed pixel. Channels must be <= 255.
func Pack(a, r, g, b uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}
