package draw

import (
	"context"
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/logger"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Engine submits shapes on the canvas owned by an Addresser.
// It is not safe for concurrent use.
type Engine struct {
	canvas *canvas.Addresser
	bus    bus.Bus
	opts   Options

	// pending is set while a started draw has not been seen to finish.
	pending bool
}

// New returns an Engine. A nil opts uses DefaultOptions.
func New(a *canvas.Addresser, opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Engine{canvas: a, bus: a.Bus(), opts: *opts}
}

// Wait blocks until the last draw finishes.
func (e *Engine) Wait(ctx context.Context) error {
	if !e.pending {
		return nil
	}
	if err := poll.StatusClear(ctx, e.bus, regs.StatusCoreBusy, e.opts.Busy); err != nil {
		logger.Warn("draw: busy did not clear", "error", err)
		return fmt.Errorf("draw: wait: %w", err)
	}
	e.pending = false
	return nil
}

// Submit draws s and waits for the engine to finish.
func (e *Engine) Submit(ctx context.Context, s Shape) error {
	if err := validate(s); err != nil {
		return err
	}
	if err := e.Wait(ctx); err != nil {
		return err
	}
	if err := e.canvas.SetForeground(s.Color); err != nil {
		return err
	}
	ctrl, ctrlReg, err := e.program(s)
	if err != nil {
		return err
	}
	if err := e.bus.WriteReg(ctrlReg, ctrl); err != nil {
		return err
	}
	e.pending = true
	logger.Debug("draw: started", "kind", s.Kind, "fill", s.Fill)
	return e.Wait(ctx)
}

// reg16 is a value for a little-endian register pair.
type reg16 struct {
	lo byte
	v  int
}

// program writes the coordinate registers of s and returns the control
// value and register that start it.
func (e *Engine) program(s Shape) (byte, byte, error) {
	var pts []reg16
	add := func(lo byte, v int) { pts = append(pts, reg16{lo, v}) }

	var ctrl, reg byte
	switch s.Kind {
	case KindLine, KindTriangle:
		add(regs.DLHSR0, s.P0.X)
		add(regs.DLVSR0, s.P0.Y)
		add(regs.DLHER0, s.P1.X)
		add(regs.DLVER0, s.P1.Y)
		reg, ctrl = regs.DCR0, regs.DrawStart
		if s.Kind == KindTriangle {
			add(regs.DTPH0, s.P2.X)
			add(regs.DTPV0, s.P2.Y)
			ctrl |= regs.DCR0Triangle
			if s.Fill {
				ctrl |= regs.DCR0Fill
			}
		}
	case KindRect, KindRoundRect:
		add(regs.DLHSR0, s.P0.X)
		add(regs.DLVSR0, s.P0.Y)
		add(regs.DLHER0, s.P1.X)
		add(regs.DLVER0, s.P1.Y)
		reg, ctrl = regs.DCR1, regs.DrawStart|regs.DCR1Rect
		if s.Kind == KindRoundRect {
			add(regs.ELLA0, s.RX)
			add(regs.ELLB0, s.RY)
			ctrl = regs.DrawStart | regs.DCR1RoundRect
		}
	case KindEllipse:
		add(regs.DEHR0, s.P0.X)
		add(regs.DEVR0, s.P0.Y)
		add(regs.ELLA0, s.RX)
		add(regs.ELLB0, s.RY)
		reg, ctrl = regs.DCR1, regs.DrawStart|regs.DCR1Ellipse
	}
	if reg == regs.DCR1 && s.Fill {
		ctrl |= regs.DrawFill
	}

	for _, p := range pts {
		if err := bus.Write16(e.bus, p.lo, uint16(p.v)); err != nil {
			return 0, 0, err
		}
	}
	return ctrl, reg, nil
}

func validate(s Shape) error {
	if !regs.Fits16(s.P0.X, s.P0.Y, s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.RX, s.RY) {
		return fmt.Errorf("%w: %s coordinates out of range", ErrInvalidArgument, s.Kind)
	}
	switch s.Kind {
	case KindLine:
		if s.Fill {
			return fmt.Errorf("%w: a line has no fill", ErrInvalidArgument)
		}
	case KindTriangle, KindRect:
	case KindRoundRect:
		w, h := abs(s.P1.X-s.P0.X), abs(s.P1.Y-s.P0.Y)
		if s.RX <= 0 || s.RY <= 0 || 2*s.RX > w || 2*s.RY > h {
			return fmt.Errorf("%w: corner %dx%d on %dx%d", ErrInvalidArgument, s.RX, s.RY, w, h)
		}
	case KindEllipse:
		if s.RX <= 0 || s.RY <= 0 {
			return fmt.Errorf("%w: radii %dx%d", ErrInvalidArgument, s.RX, s.RY)
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, s.Kind)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
