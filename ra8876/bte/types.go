package bte

import (
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

// Region is a rectangle origin on a surface in SDRAM.
type Region struct {
	Addr   uint32 // byte address of the surface's pixel (0, 0)
	Stride int    // surface width in pixels
	Height int    // surface height in lines; 0 leaves Y unchecked
	X, Y   int
}

// Surface returns a region at the origin of a surface.
func Surface(addr uint32, stride, height int) Region {
	return Region{Addr: addr, Stride: stride, Height: height}
}

// At returns r moved to (x, y) on the same surface.
func (r Region) At(x, y int) Region {
	r.X, r.Y = x, y
	return r
}

// Size is a transfer rectangle.
type Size struct {
	Width, Height int
}

// ROP is a raster operation code combining S0 and S1 bitwise.
type ROP uint8

const (
	RopBlackness    ROP = iota // 0
	RopNotS0AndNotS1           // ~(S0 | S1)
	RopNotS0AndS1              // ~S0 & S1
	RopNotS0                   // ~S0
	RopS0AndNotS1              // S0 & ~S1
	RopNotS1                   // ~S1
	RopS0XorS1                 // S0 ^ S1
	RopNotS0OrNotS1            // ~(S0 & S1)
	RopS0AndS1                 // S0 & S1
	RopS0XnorS1                // ~(S0 ^ S1)
	RopS1                      // S1
	RopNotS0OrS1               // ~S0 | S1
	RopS0                      // S0
	RopS0OrNotS1               // S0 | ~S1
	RopS0OrS1                  // S0 | S1
	RopWhiteness               // all ones
)

// Apply evaluates the operation on one byte of each source. Bit k of the
// code is the result for the source bit pair (S0<<1 | S1) == k.
func (r ROP) Apply(s0, s1 byte) byte {
	var out byte
	for bit := range 8 {
		k := (s0>>bit&1)<<1 | s1>>bit&1
		out |= (byte(r) >> k & 1) << bit
	}
	return out
}

// Op is a block transfer operation code.
type Op uint8

const (
	OpMPUWriteROP          = Op(regs.OpMPUWriteROP)
	OpCopyROP              = Op(regs.OpMemoryCopyROP)
	OpMPUWriteChroma       = Op(regs.OpMPUWriteChroma)
	OpCopyChroma           = Op(regs.OpMemoryCopyChroma)
	OpPatternFill          = Op(regs.OpPatternFillROP)
	OpPatternFillChroma    = Op(regs.OpPatternFillChroma)
	OpColorExpansion       = Op(regs.OpColorExpansion)
	OpColorExpansionChroma = Op(regs.OpColorExpansionChroma)
	OpCopyOpacity          = Op(regs.OpMemoryCopyOpacity)
	OpSolidFill            = Op(regs.OpSolidFill)
)

var opNames = map[Op]string{
	OpMPUWriteROP:          "mpu-write-rop",
	OpCopyROP:              "copy-rop",
	OpMPUWriteChroma:       "mpu-write-chroma",
	OpCopyChroma:           "copy-chroma",
	OpPatternFill:          "pattern-fill",
	OpPatternFillChroma:    "pattern-fill-chroma",
	OpColorExpansion:       "color-expansion",
	OpColorExpansionChroma: "color-expansion-chroma",
	OpCopyOpacity:          "copy-opacity",
	OpSolidFill:            "solid-fill",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

func (o Op) mpu() bool {
	switch o {
	case OpMPUWriteROP, OpMPUWriteChroma, OpColorExpansion, OpColorExpansionChroma:
		return true
	}
	return false
}

// Pattern selects the pattern tile size.
type Pattern uint8

const (
	Pattern8x8 Pattern = iota
	Pattern16x16
)

// Descriptor is a complete block transfer request.
type Descriptor struct {
	Op      Op
	Source0 *Region
	Source1 *Region // defaults to Dest for the ROP operations
	Dest    Region
	Size    Size

	ROP        ROP
	Key        *canvas.Color // chroma key for the chroma operations
	Foreground canvas.Color  // solid fill and color expansion
	Background canvas.Color  // color expansion
	Alpha      int           // 0..32, opacity only
	Pattern    Pattern
	Data       []byte // host stream for MPU operations
}

// Result reports what a submission did.
type Result struct {
	Width, Height int  // clipped size
	Skipped       bool // nothing was issued
}

// State is the engine's position in its life cycle.
type State uint8

const (
	StateIdle State = iota
	StateProgrammed
	StateTriggered
	StateBusy
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProgrammed:
		return "programmed"
	case StateTriggered:
		return "triggered"
	case StateBusy:
		return "busy"
	default:
		return "unknown"
	}
}
