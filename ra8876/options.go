package ra8876

import (
	"github.com/joshuapare/ra8876kit/ra8876/alloc"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/dma"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Options configures a Device.
type Options struct {
	// MemSize is the SDRAM arena size in bytes.
	// Default: canvas.DefaultMemSize (32 MiB)
	MemSize uint32

	// ReserveCanvas keeps the allocator from handing out the blocks that
	// hold the canvas in effect at the first Allocate.
	// Default: true
	ReserveCanvas bool

	// StartBlock is the lowest block the allocator hands out when
	// ReserveCanvas is false.
	// Default: 0
	StartBlock int

	// LargeThreshold and Policy select forward or backward placement.
	// Default: 0, alloc.PolicyBySize (always forward)
	LargeThreshold uint32
	Policy         alloc.Policy

	// FIFO bounds write FIFO drains after data-port streams.
	// Default: poll.FIFO (10ms)
	FIFO poll.Budget

	// Busy bounds core-busy waits after block transfers, draws and DMA.
	// Default: poll.Busy (1s)
	Busy poll.Budget

	// Ready bounds the IC and SDRAM ready waits.
	// Default: poll.Ready (100ms)
	Ready poll.Budget

	// Vsync bounds WaitVsync.
	// Default: poll.Vsync (50ms)
	Vsync poll.Budget

	// DMA configures the serial flash. Busy is taken from the field above.
	// Default: dma.DefaultOptions()
	DMA *dma.Options
}

// DefaultOptions returns the recommended options.
func DefaultOptions() *Options {
	return &Options{
		MemSize:       canvas.DefaultMemSize,
		ReserveCanvas: true,
		Policy:        alloc.PolicyBySize,
		FIFO:          poll.FIFO,
		Busy:          poll.Busy,
		Ready:         poll.Ready,
		Vsync:         poll.Vsync,
		DMA:           dma.DefaultOptions(),
	}
}
