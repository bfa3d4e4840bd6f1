// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/ggsoft/internal/blend"

// SolidSource is a premultiplied color.
type SolidSource struct {
	R, G, B, A uint8
}

// FromUnpremultipliedARGB premultiplies the given straight-alpha color.
func FromUnpremultipliedARGB(a, r, g, b uint8) SolidSource {
	return SolidSource{
		R: premul(r, a),
		G: premul(g, a),
		B: premul(b, a),
		A: a,
	}
}

func premul(c, a uint8) uint8 {
	return uint8(blend.Scale(uint32(c), uint32(a)))
}

// Pixel returns the source as a packed 0xAARRGGBB value.
func (s SolidSource) Pixel() uint32 {
	return blend.Pack(uint32(s.A), uint32(s.R), uint32(s.G), uint32(s.B))
}

// BlendMode selects how drawn pixels combine with the surface.
type BlendMode uint8

const (
	// BlendSrcOver draws on top of existing pixels.
	BlendSrcOver BlendMode = iota
	// BlendSrc replaces existing pixels inside the covered area.
	BlendSrc
)

func (m BlendMode) mode() blend.Mode {
	if m == BlendSrc {
		return blend.Source
	}
	return blend.SourceOver
}

// AntialiasMode selects how partial path coverage is treated.
type AntialiasMode uint8

const (
	// AntialiasGray keeps fractional coverage.
	AntialiasGray AntialiasMode = iota
	// AntialiasNone rounds coverage to fully in or fully out.
	AntialiasNone
)

// DrawOptions controls compositing of a fill or blit.
type DrawOptions struct {
	BlendMode BlendMode
	// Alpha is a global opacity multiplier in [0, 1].
	Alpha     float32
	Antialias AntialiasMode
}

// DefaultDrawOptions returns source-over, fully opaque, gray antialiasing.
func DefaultDrawOptions() *DrawOptions {
	return &DrawOptions{BlendMode: BlendSrcOver, Alpha: 1, Antialias: AntialiasGray}
}

func (o *DrawOptions) alpha8() uint32 {
	switch {
	case o.Alpha <= 0:
		return 0
	case o.Alpha >= 1:
		return 255
	default:
		return uint32(o.Alpha*255 + 0.5)
	}
}

// Image is a premultiplied ARGB bitmap, row-major, Width*Height pixels.
type Image struct {
	Width, Height int
	Data          []uint32
}
