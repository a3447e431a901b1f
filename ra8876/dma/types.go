package dma

import (
	"fmt"
	"math"
	"time"

	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Block copies a picture stored row by row in flash onto the canvas.
type Block struct {
	Src           uint32 // flash byte address of the picture
	X, Y          int    // destination on the current canvas
	PictureWidth  int
	PictureHeight int
	// CropWidth and CropHeight limit the copied area. 0 copies the full
	// picture; larger values are clipped to it.
	CropWidth  int
	CropHeight int
}

// Linear copies Count bytes from flash to a flat SDRAM address.
type Linear struct {
	Src   uint32
	Dest  uint32
	Count uint32
}

// LinearFromPicture returns the linear transfer for a w×h picture in mode m.
// Pictures whose byte count does not fit 32 bits are rejected.
func LinearFromPicture(src, dest uint32, w, h int, m canvas.ColorMode) (Linear, error) {
	bpp := m.BytesPerPixel()
	if w <= 0 || h <= 0 || bpp == 0 {
		return Linear{}, fmt.Errorf("%w: picture %dx%d in %s", ErrInvalidArgument, w, h, m)
	}
	n := uint64(w) * uint64(h) * uint64(bpp)
	if n > math.MaxUint32 {
		return Linear{}, fmt.Errorf("%w: picture %dx%d is %d bytes", ErrInvalidArgument, w, h, n)
	}
	return Linear{Src: src, Dest: dest, Count: uint32(n)}, nil
}

// Options configures a Loader.
type Options struct {
	// Busy bounds the wait for a transfer to finish.
	// Default: poll.Busy (1s)
	Busy poll.Budget

	// Flash selects the chip select the flash is wired to, 0 or 1.
	// Default: 1
	Flash int

	// Divisor sets the SPI clock to Fcore / ((Divisor+1) × 2).
	// Default: 2
	Divisor byte

	// Addr32 reads the flash with 4-byte addresses. The part must be in
	// 4-byte mode (see EnterFourByteMode).
	// Default: true
	Addr32 bool

	// CommandDelay is the chip-select settle time around flash commands.
	// Default: 1ms
	CommandDelay time.Duration
}

// DefaultOptions returns the recommended options.
func DefaultOptions() *Options {
	return &Options{
		Busy:         poll.Busy,
		Flash:        1,
		Divisor:      2,
		Addr32:       true,
		CommandDelay: time.Millisecond,
	}
}
