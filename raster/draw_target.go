// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggsoft/internal/blend"
)

// DrawTarget is a premultiplied ARGB surface with clip and transform state.
type DrawTarget struct {
	width  int
	height int
	buf    []uint32

	clip      clipStack
	transform Transform

	ras  vector.Rasterizer
	mask image.Alpha
}

// NewDrawTarget creates a transparent surface of the given size.
func NewDrawTarget(width, height int) *DrawTarget {
	width = max(width, 0)
	height = max(height, 0)
	return &DrawTarget{
		width:     width,
		height:    height,
		buf:       make([]uint32, width*height),
		clip:      newClipStack(image.Rect(0, 0, width, height)),
		transform: Identity(),
	}
}

// Width returns the surface width in pixels.
func (dt *DrawTarget) Width() int {
	return dt.width
}

// Height returns the surface height in pixels.
func (dt *DrawTarget) Height() int {
	return dt.height
}

// Data returns the pixels, row-major, packed as 0xAARRGGBB premultiplied.
func (dt *DrawTarget) Data() []uint32 {
	return dt.buf
}

// Pixel returns the pixel at (x, y), or 0 outside the surface.
func (dt *DrawTarget) Pixel(x, y int) uint32 {
	if x < 0 || x >= dt.width || y < 0 || y >= dt.height {
		return 0
	}
	return dt.buf[y*dt.width+x]
}

// Clear sets every pixel to src, ignoring clip and transform.
func (dt *DrawTarget) Clear(src SolidSource) {
	p := src.Pixel()
	for i := range dt.buf {
		dt.buf[i] = p
	}
}

// Transform returns the current user-to-device transform.
func (dt *DrawTarget) Transform() Transform {
	return dt.transform
}

// SetTransform replaces the current transform.
func (dt *DrawTarget) SetTransform(t Transform) {
	dt.transform = t
}

// PushClipRect intersects the clip with r, given in device pixels.
func (dt *DrawTarget) PushClipRect(r image.Rectangle) {
	dt.clip.push(r)
}

// PopClip restores the clip in effect before the last PushClipRect.
func (dt *DrawTarget) PopClip() {
	dt.clip.pop()
}

// ClipBounds returns the current clip in device pixels.
func (dt *DrawTarget) ClipBounds() image.Rectangle {
	return dt.clip.bounds
}

// ClipDepth returns the number of pushed clip rectangles.
func (dt *DrawTarget) ClipDepth() int {
	return dt.clip.depth()
}

// Fill fills p with src using the nonzero winding rule.
// A nil opts means DefaultDrawOptions.
func (dt *DrawTarget) Fill(p *Path, src SolidSource, opts *DrawOptions) {
	if p == nil {
		return
	}
	if opts == nil {
		opts = DefaultDrawOptions()
	}
	dp := p.transformed(dt.transform)
	minX, minY, maxX, maxY, ok := dp.Bounds()
	if !ok {
		return
	}
	area := image.Rect(
		int(math32.Floor(minX)), int(math32.Floor(minY)),
		int(math32.Ceil(maxX)), int(math32.Ceil(maxY)),
	).Intersect(dt.clip.bounds)
	if area.Empty() {
		return
	}

	mask := dt.rasterize(dp, area)

	col := src.Pixel()
	mode := opts.BlendMode.mode()
	alpha := opts.alpha8()
	w, h := area.Dx(), area.Dy()
	for y := 0; y < h; y++ {
		row := (area.Min.Y+y)*dt.width + area.Min.X
		cov := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, c := range cov {
			c32 := uint32(c)
			if opts.Antialias == AntialiasNone {
				if c32 >= 128 {
					c32 = 255
				} else {
					c32 = 0
				}
			}
			if alpha != 255 {
				c32 = (c32*alpha + 127) / 255
			}
			if c32 == 0 {
				continue
			}
			dt.buf[row+x] = blend.Composite(mode, col, dt.buf[row+x], c32)
		}
	}
}

// rasterize computes the coverage of p inside area into dt.mask.
// The mask's origin corresponds to area.Min.
func (dt *DrawTarget) rasterize(p *Path, area image.Rectangle) *image.Alpha {
	w, h := area.Dx(), area.Dy()
	dt.ras.Reset(w, h)
	dt.ras.DrawOp = draw.Src

	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	open := false
	for _, op := range p.ops {
		a, b := op.Points[0], op.Points[1]
		switch op.Kind {
		case OpMoveTo:
			if open {
				dt.ras.ClosePath()
			}
			dt.ras.MoveTo(a.X-ox, a.Y-oy)
			open = true
		case OpLineTo:
			dt.ras.LineTo(a.X-ox, a.Y-oy)
		case OpQuadTo:
			dt.ras.QuadTo(a.X-ox, a.Y-oy, b.X-ox, b.Y-oy)
		case OpClose:
			if open {
				dt.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		dt.ras.ClosePath()
	}

	if cap(dt.mask.Pix) < w*h {
		dt.mask.Pix = make([]uint8, w*h)
	}
	dt.mask.Pix = dt.mask.Pix[:w*h]
	dt.mask.Stride = w
	dt.mask.Rect = image.Rect(0, 0, w, h)
	dt.ras.Draw(&dt.mask, dt.mask.Rect, image.Opaque, image.Point{})
	return &dt.mask
}

// DrawImageAt composites img with its top-left corner at (x, y) in user space.
// Only the translation part of the transform applies to images; the device
// position is rounded to whole pixels.
func (dt *DrawTarget) DrawImageAt(x, y float32, img *Image, opts *DrawOptions) {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Data) < img.Width*img.Height {
		return
	}
	if opts == nil {
		opts = DefaultDrawOptions()
	}
	dx, dy := dt.transform.TransformPoint(x, y)
	ox := int(math32.Floor(dx + 0.5))
	oy := int(math32.Floor(dy + 0.5))
	area := image.Rect(ox, oy, ox+img.Width, oy+img.Height).Intersect(dt.clip.bounds)
	if area.Empty() {
		return
	}

	mode := opts.BlendMode.mode()
	alpha := opts.alpha8()
	if alpha == 0 {
		return
	}
	for py := area.Min.Y; py < area.Max.Y; py++ {
		src := img.Data[(py-oy)*img.Width : (py-oy+1)*img.Width]
		row := py * dt.width
		for px := area.Min.X; px < area.Max.X; px++ {
			dt.buf[row+px] = blend.Composite(mode, src[px-ox], dt.buf[row+px], alpha)
		}
	}
}

// ToImage converts the surface to an image.RGBA (also premultiplied).
// Color channels above alpha, which source-over of a color that was not
// premultiplied by its own alpha can leave behind, are clamped to alpha.
func (dt *DrawTarget) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, dt.width, dt.height))
	for i, p := range dt.buf {
		a, r, g, b := blend.Unpack(p)
		j := i * 4
		img.Pix[j+0] = uint8(min(r, a))
		img.Pix[j+1] = uint8(min(g, a))
		img.Pix[j+2] = uint8(min(b, a))
		img.Pix[j+3] = uint8(a)
	}
	return img
}

// SavePNG writes the surface to a PNG file.
func (dt *DrawTarget) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := png.Encode(f, dt.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return f.Close()
}
