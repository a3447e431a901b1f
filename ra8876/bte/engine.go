package bte

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/logger"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Engine submits block transfers on the canvas owned by an Addresser.
// Pixel depth and the color registers follow the current canvas.
// It is not safe for concurrent use.
type Engine struct {
	canvas *canvas.Addresser
	bus    bus.Bus
	opts   Options
	state  State
}

// New returns an Engine. A nil opts uses DefaultOptions.
func New(a *canvas.Addresser, opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Engine{canvas: a, bus: a.Bus(), opts: *opts}
}

// State returns the engine's life-cycle state.
func (e *Engine) State() State { return e.state }

// Wait blocks until core busy clears. The engine stays Busy when the budget
// runs out, so the next Submit waits again.
func (e *Engine) Wait(ctx context.Context) error {
	if e.state == StateIdle {
		return nil
	}
	if err := poll.StatusClear(ctx, e.bus, regs.StatusCoreBusy, e.opts.Busy); err != nil {
		logger.Warn("bte: busy did not clear", "error", err)
		return fmt.Errorf("bte: wait: %w", err)
	}
	e.state = StateIdle
	return nil
}

// Submit validates, clips, programs and triggers d, then waits for the
// operation to complete.
func (e *Engine) Submit(ctx context.Context, d Descriptor) (Result, error) {
	if err := validate(d); err != nil {
		return Result{}, err
	}
	size, ok := Clip(d)
	if !ok || e.noop(d) {
		logger.Debug("bte: skipped", "op", d.Op, "dst_x", d.Dest.X, "dst_y", d.Dest.Y)
		return Result{Skipped: true}, nil
	}
	bpp := e.canvas.Format().BytesPerPixel
	if bpp == 0 {
		return Result{}, canvas.ErrNoCanvas
	}
	data, err := streamFor(d, size, bpp)
	if err != nil {
		return Result{}, err
	}

	if e.state != StateIdle {
		if err := e.Wait(ctx); err != nil {
			return Result{}, errors.Join(ErrBusy, err)
		}
	}

	e.state = StateProgrammed
	if err := e.program(d, size); err != nil {
		e.state = StateIdle
		return Result{}, err
	}

	ctrl0 := regs.BTEEnable
	if d.Pattern == Pattern16x16 && (d.Op == OpPatternFill || d.Op == OpPatternFillChroma) {
		ctrl0 |= regs.BTEPattern16x16
	}
	if err := e.bus.WriteReg(regs.BTECTRL0, ctrl0); err != nil {
		e.state = StateIdle
		return Result{}, err
	}
	e.state = StateTriggered
	logger.Debug("bte: triggered", "op", d.Op, "w", size.Width, "h", size.Height)

	if len(data) > 0 {
		if err := bus.WriteStream(e.bus, data); err != nil {
			return Result{}, err
		}
	}
	e.state = StateBusy

	res := Result{Width: size.Width, Height: size.Height}
	if err := e.Wait(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// noop reports color expansion with chroma keying where foreground and
// background match: every pixel would be skipped.
func (e *Engine) noop(d Descriptor) bool {
	if d.Op != OpColorExpansionChroma {
		return false
	}
	m := e.canvas.Descriptor().Mode
	return d.Foreground.Register(m) == d.Background.Register(m)
}

func validate(d Descriptor) error {
	if d.Size.Width <= 0 || d.Size.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, d.Size.Width, d.Size.Height)
	}
	if d.ROP > RopWhiteness {
		return fmt.Errorf("%w: rop %d", ErrInvalidArgument, d.ROP)
	}
	if d.Dest.Stride <= 0 {
		return fmt.Errorf("%w: destination stride %d", ErrInvalidArgument, d.Dest.Stride)
	}
	if d.Size.Width > regs.MaxCoord || d.Size.Height > regs.MaxCoord {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, d.Size.Width, d.Size.Height)
	}
	for _, r := range []*Region{d.Source0, d.Source1, &d.Dest} {
		if r != nil && !r.fits() {
			return fmt.Errorf("%w: region %+v exceeds the 16-bit registers", ErrInvalidArgument, *r)
		}
	}
	switch d.Op {
	case OpCopyROP, OpCopyChroma, OpCopyOpacity, OpPatternFill, OpPatternFillChroma:
		if d.Source0 == nil {
			return fmt.Errorf("%w: %s needs source 0", ErrInvalidArgument, d.Op)
		}
	case OpMPUWriteROP, OpMPUWriteChroma, OpColorExpansion, OpColorExpansionChroma, OpSolidFill:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, d.Op)
	}
	if d.Op == OpCopyOpacity && d.Source1 == nil {
		return fmt.Errorf("%w: %s needs source 1", ErrInvalidArgument, d.Op)
	}
	if (d.Op == OpCopyChroma || d.Op == OpMPUWriteChroma || d.Op == OpPatternFillChroma) && d.Key == nil {
		return fmt.Errorf("%w: %s needs a key color", ErrInvalidArgument, d.Op)
	}
	return nil
}

// streamFor returns the host bytes for the clipped size, dropping the
// columns cut off by clipping from each row.
func streamFor(d Descriptor, size Size, bpp int) ([]byte, error) {
	if !d.Op.mpu() {
		return nil, nil
	}
	var row, keep int
	switch d.Op {
	case OpColorExpansion, OpColorExpansionChroma:
		row, keep = (d.Size.Width+7)/8, (size.Width+7)/8
	default:
		row, keep = d.Size.Width*bpp, size.Width*bpp
	}
	if len(d.Data) < row*d.Size.Height {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d",
			ErrInvalidArgument, d.Op, row*d.Size.Height, len(d.Data))
	}
	if keep == row && size.Height == d.Size.Height {
		return d.Data[:row*size.Height], nil
	}
	out := make([]byte, 0, keep*size.Height)
	for j := range size.Height {
		out = append(out, d.Data[j*row:j*row+keep]...)
	}
	return out, nil
}

// program writes sources, destination, size, then operation and colors.
// The enable bit is written by the caller.
func (e *Engine) program(d Descriptor, size Size) error {
	s1 := d.Source1
	if s1 == nil {
		s1 = &d.Dest
	}
	switch d.Op {
	case OpCopyROP, OpCopyOpacity:
		if err := e.region(regs.S0STR0, *d.Source0); err != nil {
			return err
		}
		if err := e.region(regs.S1STR0, *s1); err != nil {
			return err
		}
	case OpCopyChroma, OpPatternFill, OpPatternFillChroma:
		if err := e.region(regs.S0STR0, *d.Source0); err != nil {
			return err
		}
		if d.Op == OpPatternFill {
			// the pattern is combined with the destination
			if err := e.region(regs.S1STR0, d.Dest); err != nil {
				return err
			}
		}
	case OpMPUWriteROP:
		if err := e.region(regs.S1STR0, *s1); err != nil {
			return err
		}
	}
	if err := e.region(regs.DTSTR0, d.Dest); err != nil {
		return err
	}
	if err := bus.Write16(e.bus, regs.BTEWTH0, uint16(size.Width)); err != nil {
		return err
	}
	if err := bus.Write16(e.bus, regs.BTEHIG0, uint16(size.Height)); err != nil {
		return err
	}

	var code byte
	switch d.Op {
	case OpCopyROP, OpMPUWriteROP, OpPatternFill:
		code = byte(d.ROP)
	case OpPatternFillChroma:
		code = byte(RopS0)
	case OpColorExpansion, OpColorExpansionChroma:
		code = regs.ExpansionBusWidth8
	}

	switch d.Op {
	case OpCopyChroma, OpMPUWriteChroma, OpPatternFillChroma:
		if err := e.canvas.SetBackground(*d.Key); err != nil {
			return err
		}
	case OpSolidFill:
		if err := e.canvas.SetForeground(d.Foreground); err != nil {
			return err
		}
	case OpColorExpansion, OpColorExpansionChroma:
		if err := e.canvas.SetForeground(d.Foreground); err != nil {
			return err
		}
		if err := e.canvas.SetBackground(d.Background); err != nil {
			return err
		}
	case OpCopyOpacity:
		if err := e.bus.WriteReg(regs.APBCTRL, byte(clampAlpha(d.Alpha))); err != nil {
			return err
		}
	}
	return e.bus.WriteReg(regs.BTECTRL1, code<<4|byte(d.Op))
}

func (e *Engine) region(first byte, r Region) error {
	if err := bus.Write32(e.bus, first, r.Addr); err != nil {
		return err
	}
	// width, X and Y follow the 4-byte start address
	if err := bus.Write16(e.bus, first+4, uint16(r.Stride)); err != nil {
		return err
	}
	if err := bus.Write16(e.bus, first+6, uint16(r.X)); err != nil {
		return err
	}
	return bus.Write16(e.bus, first+8, uint16(r.Y))
}

func clampAlpha(a int) int {
	return max(0, min(a, 32))
}
