package primitive

// Font selects the typeface used by a Text primitive.
//
// The zero value is the renderer's built-in fallback font. A non-empty Name
// selects an externally supplied font whose Bytes are parsed the first time
// the name is seen; later references with the same Name reuse that parse.
type Font struct {
	Name  string
	Bytes []byte
}

// DefaultFont is the renderer's built-in font.
var DefaultFont = Font{}

// External returns a named font backed by TrueType/OpenType data.
func External(name string, data []byte) Font {
	return Font{Name: name, Bytes: data}
}

// IsDefault reports whether f refers to the built-in font.
func (f Font) IsDefault() bool {
	return f.Name == ""
}

// HorizontalAlignment positions text horizontally inside its bounds.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// VerticalAlignment positions text vertically inside its bounds.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Center"
	case AlignBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}
