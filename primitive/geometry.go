package primitive

// Point is a position in logical units.
type Point struct {
	X, Y float32
}

// Vector is a displacement in logical units.
type Vector struct {
	X, Y float32
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Size is a width and height in logical units.
type Size struct {
	Width, Height float32
}

// Rectangle is an axis-aligned rectangle given by its top-left corner and size.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// Rect is shorthand for a Rectangle literal.
func Rect(x, y, width, height float32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Origin returns the top-left corner.
func (r Rectangle) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the right edge.
func (r Rectangle) MaxX() float32 {
	return r.X + r.Width
}

// MaxY returns the bottom edge.
func (r Rectangle) MaxY() float32 {
	return r.Y + r.Height
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Scale returns r with every coordinate multiplied by s.
func (r Rectangle) Scale(s float32) Rectangle {
	return Rectangle{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}
