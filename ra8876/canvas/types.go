package canvas

// Addressing selects how the controller interprets the cursor registers.
type Addressing uint8

const (
	// Block addresses pixels as (x, y) relative to the canvas base.
	Block Addressing = iota
	// Linear addresses memory as a flat byte address.
	Linear
)

func (a Addressing) String() string {
	if a == Linear {
		return "linear"
	}
	return "block"
}

// Descriptor describes a canvas.
type Descriptor struct {
	Width      int
	Height     int
	Mode       ColorMode
	Base       uint32 // arena byte offset of pixel (0, 0)
	Addressing Addressing
}

// Window is the active window relative to the canvas base.
type Window struct {
	X, Y          int
	Width, Height int
}

// Position is the complete positioning register set.
type Position struct {
	Base    uint32
	Width   int // canvas image width in pixels
	Window  Window
	CursorX int
	CursorY int
}
