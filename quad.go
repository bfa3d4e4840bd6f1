package ggsoft

import (
	"github.com/gogpu/ggsoft/primitive"
	"github.com/gogpu/ggsoft/raster"
)

// roundedRectPath builds the outline of the box (x, y)-(xmax, ymax) with
// quadratic corners of radius r. A zero radius gives a plain four-vertex
// rectangle.
func roundedRectPath(r, x, y, xmax, ymax float32) *raster.Path {
	pb := raster.NewPathBuilder()
	if r == 0 {
		pb.MoveTo(x, y)
		pb.LineTo(xmax, y)
		pb.LineTo(xmax, ymax)
		pb.LineTo(x, ymax)
	} else {
		pb.MoveTo(x, y+r)
		pb.QuadTo(x, y, x+r, y)
		pb.LineTo(xmax-r, y)
		pb.QuadTo(xmax, y, xmax, y+r)
		pb.LineTo(xmax, ymax-r)
		pb.QuadTo(xmax, ymax, xmax-r, ymax)
		pb.LineTo(x+r, ymax)
		pb.QuadTo(x, ymax, x, ymax-r)
	}
	pb.Close()
	return pb.Finish()
}

func solidSource(c primitive.Color) raster.SolidSource {
	r, g, b, a := c.RGBA8()
	return raster.FromUnpremultipliedARGB(a, r, g, b)
}

// drawQuad fills the border box with the border color, then the box inset by
// the border width with the background. Quad geometry is in canvas units and
// is not multiplied by the scale factor.
func (d *drawState) drawQuad(q primitive.Quad) {
	b := q.Bounds
	r, w := q.BorderRadius, q.BorderWidth

	d.canvas.Fill(roundedRectPath(r, b.X, b.Y, b.MaxX(), b.MaxY()), solidSource(q.BorderColor), nil)

	inner := roundedRectPath(r, b.X+w, b.Y+w, b.MaxX()-w, b.MaxY()-w)
	switch bg := q.Background.(type) {
	case primitive.BackgroundColor:
		d.canvas.Fill(inner, solidSource(bg.Color), raster.DefaultDrawOptions())
	case nil:
		// Border only.
	}
}
