package ra8876

import (
	"errors"
	"fmt"

	"github.com/joshuapare/ra8876kit/ra8876/alloc"
	"github.com/joshuapare/ra8876kit/ra8876/bte"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/dma"
	"github.com/joshuapare/ra8876kit/ra8876/draw"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// ErrInvalidArgument matches invalid-argument errors from every component.
var ErrInvalidArgument = errors.New("ra8876: invalid argument")

// Errors re-exported from the components.
var (
	ErrOutOfMemory = alloc.ErrOutOfMemory
	ErrOutOfBounds = alloc.ErrOutOfBounds
	ErrOutOfRange  = canvas.ErrOutOfRange
	ErrNoCanvas    = canvas.ErrNoCanvas
	ErrTimeout     = poll.ErrTimeout
)

// wrap tags component invalid-argument errors with ErrInvalidArgument.
func wrap(err error) error {
	if err == nil || errors.Is(err, ErrInvalidArgument) {
		return err
	}
	for _, e := range []error{
		alloc.ErrInvalidArgument,
		canvas.ErrInvalidArgument,
		bte.ErrInvalidArgument,
		dma.ErrInvalidArgument,
		draw.ErrInvalidArgument,
	} {
		if errors.Is(err, e) {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}
	return err
}
