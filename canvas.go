package ggsoft

import (
	"image"

	"github.com/gogpu/ggsoft/raster"
)

// Canvas is the drawing surface Backend.Draw paints onto.
// *raster.DrawTarget implements it.
type Canvas interface {
	// Fill fills a path in user space.
	Fill(p *raster.Path, src raster.SolidSource, opts *raster.DrawOptions)
	// DrawImageAt composites a premultiplied image with its top-left corner
	// at (x, y) in user space.
	DrawImageAt(x, y float32, img *raster.Image, opts *raster.DrawOptions)
	// PushClipRect narrows the clip to r, in device pixels.
	PushClipRect(r image.Rectangle)
	// PopClip undoes the last PushClipRect.
	PopClip()
	Transform() raster.Transform
	SetTransform(t raster.Transform)
}

var _ Canvas = (*raster.DrawTarget)(nil)
