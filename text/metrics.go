package text

// Bounds is a glyph's outline box in pixels, relative to the pen position on
// the baseline. YMin is the bottom edge, positive upward.
type Bounds struct {
	XMin, YMin    float32
	Width, Height float32
}

// Metrics describes a rasterized glyph.
//
// The bitmap's bottom-left corner sits at (XMin, YMin) from the pen position,
// with Y increasing upward. Width and Height are the bitmap dimensions.
type Metrics struct {
	XMin, YMin    int
	Width, Height int

	// AdvanceWidth is the horizontal pen advance in pixels.
	AdvanceWidth float32

	// Bounds is the exact outline box.
	Bounds Bounds
}

// top returns the distance from the baseline to the bitmap's top edge,
// positive upward.
func (m Metrics) top() int {
	return m.YMin + m.Height
}

// LineMetrics holds the vertical metrics of a font at one size.
type LineMetrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float32
	// Descent is the distance from the baseline to the bottom of the line,
	// as a positive number.
	Descent float32
	// LineGap is the extra spacing between lines.
	LineGap float32
}

// Height returns the advance from one baseline to the next.
func (m LineMetrics) Height() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

func (m LineMetrics) union(o LineMetrics) LineMetrics {
	return LineMetrics{
		Ascent:  max(m.Ascent, o.Ascent),
		Descent: max(m.Descent, o.Descent),
		LineGap: max(m.LineGap, o.LineGap),
	}
}
