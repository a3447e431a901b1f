package canvas

import (
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// DefaultMemSize is the arena size of the reference hardware.
const DefaultMemSize uint32 = regs.MemSizeMax

// Options configures an Addresser.
type Options struct {
	// MemSize bounds every address the Addresser computes.
	// Default: DefaultMemSize (32 MiB)
	MemSize uint32

	// FIFO bounds the wait for the write FIFO to drain after a stream.
	// A zero Timeout fails the wait immediately.
	// Default: poll.FIFO
	FIFO poll.Budget
}

// DefaultOptions returns the recommended options.
func DefaultOptions() *Options {
	return &Options{
		MemSize: DefaultMemSize,
		FIFO:    poll.FIFO,
	}
}
