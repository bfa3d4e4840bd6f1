package primitive

// Interaction is the mouse cursor the host should show.
// The renderer passes it through a draw call unchanged.
type Interaction uint8

const (
	Idle Interaction = iota
	Pointer
	Grab
	TextCursor
	Crosshair
	Working
	Grabbing
	ResizingHorizontally
	ResizingVertically
)

var interactionNames = [...]string{
	Idle:                 "Idle",
	Pointer:              "Pointer",
	Grab:                 "Grab",
	TextCursor:           "Text",
	Crosshair:            "Crosshair",
	Working:              "Working",
	Grabbing:             "Grabbing",
	ResizingHorizontally: "ResizingHorizontally",
	ResizingVertically:   "ResizingVertically",
}

func (i Interaction) String() string {
	if int(i) < len(interactionNames) {
		return interactionNames[i]
	}
	return "Unknown"
}
