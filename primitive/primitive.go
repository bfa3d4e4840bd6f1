package primitive

// Primitive is a node of the primitive tree.
//
// The set of implementations is closed: None, Group, Text, Quad, Image, Svg,
// Clip, Translate, Mesh2D and Cached.
type Primitive interface {
	isPrimitive()
}

// None draws nothing.
type None struct{}

// Group draws its children in order. Children share the parent's clip and
// transform; a Clip or Translate child affects only its own subtree.
type Group struct {
	Primitives []Primitive
}

// Text draws a run of text inside Bounds.
type Text struct {
	Content             string
	Bounds              Rectangle
	Color               Color
	Size                float32
	Font                Font
	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment
}

// Quad draws a rectangle with optionally rounded corners and a border.
// BorderRadius and BorderWidth are in the same units as Bounds.
type Quad struct {
	Bounds       Rectangle
	Background   Background
	BorderRadius float32
	BorderWidth  float32
	BorderColor  Color
}

// Handle identifies an image or vector resource owned by the host.
type Handle struct {
	ID   uint64
	Path string
}

// Image draws a raster image.
type Image struct {
	Handle Handle
	Bounds Rectangle
}

// Svg draws a vector image.
type Svg struct {
	Handle Handle
	Bounds Rectangle
}

// Clip restricts Content to Bounds and translates it by
// Bounds.Origin + Offset.
type Clip struct {
	Bounds  Rectangle
	Offset  Vector
	Content Primitive
}

// Translate moves Content by Translation.
type Translate struct {
	Translation Vector
	Content     Primitive
}

// Vertex2D is a colored mesh vertex.
type Vertex2D struct {
	Position [2]float32
	Color    [4]float32
}

// Mesh2DBuffers holds an indexed triangle list.
type Mesh2DBuffers struct {
	Vertices []Vertex2D
	Indices  []uint32
}

// Mesh2D draws a triangle mesh.
type Mesh2D struct {
	Buffers Mesh2DBuffers
	Size    Size
}

// Cached wraps a subtree the host memoizes across frames. It renders exactly
// like Cache.
type Cached struct {
	Cache Primitive
}

func (None) isPrimitive()      {}
func (Group) isPrimitive()     {}
func (Text) isPrimitive()      {}
func (Quad) isPrimitive()      {}
func (Image) isPrimitive()     {}
func (Svg) isPrimitive()       {}
func (Clip) isPrimitive()      {}
func (Translate) isPrimitive() {}
func (Mesh2D) isPrimitive()    {}
func (Cached) isPrimitive()    {}
