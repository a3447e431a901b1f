package canvas

import (
	"context"
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Write streams data into the arena starting at column 0 of line ln. The
// window spans the full canvas width and as many lines as data covers.
func (a *Addresser) Write(ctx context.Context, data []byte, ln int) error {
	if len(data) == 0 {
		return nil
	}
	p, err := a.linesFrame(ln, len(data))
	if err != nil {
		return err
	}
	return a.WithPosition(p, func() error {
		if err := bus.WriteStream(a.bus, data); err != nil {
			return err
		}
		return a.drain(ctx)
	})
}

// Read fills p from the arena starting at column 0 of line ln.
func (a *Addresser) Read(ctx context.Context, p []byte, ln int) error {
	if len(p) == 0 {
		return nil
	}
	pos, err := a.linesFrame(ln, len(p))
	if err != nil {
		return err
	}
	return a.WithPosition(pos, func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// the first data-port read after a cursor move returns stale data
		var dummy [1]byte
		if err := bus.ReadStream(a.bus, dummy[:]); err != nil {
			return err
		}
		return bus.ReadStream(a.bus, p)
	})
}

// PutPicture writes a w × h picture with its top-left corner at (x, y) on the
// canvas starting at line ln. data holds w × h pixels in the canvas format.
func (a *Addresser) PutPicture(ctx context.Context, x, y, w, h int, data []byte, ln int) error {
	if w <= 0 || h <= 0 || !regs.Fits16(x, y, w, h) {
		return fmt.Errorf("%w: picture %dx%d at (%d,%d)", ErrInvalidArgument, w, h, x, y)
	}
	if !a.ready {
		return ErrNoCanvas
	}
	want := w * h * a.format.BytesPerPixel
	if len(data) < want {
		return fmt.Errorf("%w: picture needs %d bytes, have %d", ErrInvalidArgument, want, len(data))
	}
	base, err := a.AddressFromLineOffset(ln)
	if err != nil {
		return err
	}
	p := Position{
		Base:    base,
		Width:   a.desc.Width,
		Window:  Window{X: x, Y: y, Width: w, Height: h},
		CursorX: x,
		CursorY: y,
	}
	return a.WithPosition(p, func() error {
		if err := bus.WriteStream(a.bus, data[:want]); err != nil {
			return err
		}
		return a.drain(ctx)
	})
}

// PutPixel writes a single pixel at (x, y) on the canvas starting at line ln.
func (a *Addresser) PutPixel(ctx context.Context, x, y int, c Color, ln int) error {
	if !a.ready {
		return ErrNoCanvas
	}
	return a.PutPicture(ctx, x, y, 1, 1, c.Encode(a.desc.Mode), ln)
}

// SetForeground programs the foreground color registers.
func (a *Addresser) SetForeground(c Color) error {
	return a.writeColor(regs.FGCR, c)
}

// SetBackground programs the background color registers. The chroma-key
// operations compare against this color.
func (a *Addresser) SetBackground(c Color) error {
	return a.writeColor(regs.BGCR, c)
}

func (a *Addresser) writeColor(first byte, c Color) error {
	if !a.ready {
		return ErrNoCanvas
	}
	for i, v := range c.Register(a.desc.Mode) {
		if err := a.bus.WriteReg(first+byte(i), v); err != nil {
			return err
		}
	}
	return nil
}

// linesFrame builds a full-width position for n bytes at line ln.
func (a *Addresser) linesFrame(ln, n int) (Position, error) {
	base, err := a.AddressFromLineOffset(ln)
	if err != nil {
		return Position{}, err
	}
	stride := a.desc.Width * a.format.BytesPerPixel
	lines := (n + stride - 1) / stride
	if uint64(base)+uint64(n) > uint64(a.opts.MemSize) {
		return Position{}, fmt.Errorf("%w: %d bytes at line %d", ErrOutOfRange, n, ln)
	}
	return Position{
		Base:   base,
		Width:  a.desc.Width,
		Window: Window{Width: a.desc.Width, Height: lines},
	}, nil
}

func (a *Addresser) drain(ctx context.Context) error {
	if err := poll.StatusSet(ctx, a.bus, regs.StatusWriteFIFOEmpty, a.opts.FIFO); err != nil {
		return fmt.Errorf("canvas: write fifo: %w", err)
	}
	return nil
}
