package ggsoft

import "github.com/gogpu/ggsoft/primitive"

// Viewport describes the surface a frame is drawn for.
type Viewport struct {
	PhysicalWidth  uint32
	PhysicalHeight uint32
	// ScaleFactor maps logical units to physical pixels. Values <= 0 are
	// treated as 1.
	ScaleFactor float64
}

// NewViewport returns a viewport of the given physical size and scale factor.
func NewViewport(width, height uint32, scale float64) Viewport {
	return Viewport{PhysicalWidth: width, PhysicalHeight: height, ScaleFactor: scale}
}

// Scale returns the scale factor as float32, defaulting to 1.
func (v Viewport) Scale() float32 {
	if v.ScaleFactor <= 0 {
		return 1
	}
	return float32(v.ScaleFactor)
}

// PhysicalSize returns the size in pixels.
func (v Viewport) PhysicalSize() primitive.Size {
	return primitive.Size{Width: float32(v.PhysicalWidth), Height: float32(v.PhysicalHeight)}
}

// LogicalSize returns the size in logical units.
func (v Viewport) LogicalSize() primitive.Size {
	s := v.Scale()
	return primitive.Size{Width: float32(v.PhysicalWidth) / s, Height: float32(v.PhysicalHeight) / s}
}
