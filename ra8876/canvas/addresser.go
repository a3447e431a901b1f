package canvas

import (
	"errors"
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
)

// Addresser owns the canvas geometry and the positioning registers.
// It is not safe for concurrent use.
type Addresser struct {
	bus  bus.Bus
	opts Options

	desc   Descriptor
	format Format
	ready  bool

	// pos mirrors the last programmed positioning registers.
	pos Position
}

// New returns an Addresser. A nil opts uses DefaultOptions.
func New(b bus.Bus, opts *Options) *Addresser {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.MemSize == 0 {
		o.MemSize = DefaultMemSize
	}
	return &Addresser{bus: b, opts: o}
}

// Bus returns the transport the Addresser writes to.
func (a *Addresser) Bus() bus.Bus { return a.bus }

// Descriptor returns the current canvas.
func (a *Addresser) Descriptor() Descriptor { return a.desc }

// Format returns the storage format of the current canvas.
func (a *Addresser) Format() Format { return a.format }

// Position returns the last programmed position.
func (a *Addresser) Position() Position { return a.pos }

// MemSize returns the arena size in bytes.
func (a *Addresser) MemSize() uint32 { return a.opts.MemSize }

// SetCanvas programs color depth, addressing mode and the default position
// for d.
func (a *Addresser) SetCanvas(d Descriptor) error {
	f, ok := d.Mode.Format()
	if !ok {
		return fmt.Errorf("%w: color mode %d", ErrInvalidArgument, d.Mode)
	}
	if d.Width <= 0 || d.Height <= 0 || !regs.Fits16(d.Width, d.Height) {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidArgument, d.Width, d.Height)
	}
	size := uint64(d.Width) * uint64(d.Height) * uint64(f.BytesPerPixel)
	if uint64(d.Base)+size > uint64(a.opts.MemSize) {
		return fmt.Errorf("%w: canvas ends at 0x%X", ErrOutOfRange, uint64(d.Base)+size)
	}

	depth := f.DepthCode
	var linear byte
	if d.Addressing == Linear {
		linear = regs.AWColorLinear
	}
	// PIP windows off, main image depth in bits 3:2
	if err := bus.Modify(a.bus, regs.MPWCTR, 0xCC, depth<<2); err != nil {
		return err
	}
	if err := a.bus.WriteReg(regs.PIPCDEP, depth<<2|depth); err != nil {
		return err
	}
	if err := a.bus.WriteReg(regs.AWCOLOR, linear|depth); err != nil {
		return err
	}
	if err := a.bus.WriteReg(regs.BTECOLR, depth<<5|depth<<2|depth); err != nil {
		return err
	}

	a.desc = d
	a.format = f
	a.ready = true
	return a.Apply(a.Default())
}

// Default returns the primary position: canvas base, full-canvas window,
// cursor at the origin.
func (a *Addresser) Default() Position {
	return Position{
		Base:   a.desc.Base,
		Width:  a.desc.Width,
		Window: Window{Width: a.desc.Width, Height: a.desc.Height},
	}
}

// SetAddressing switches between Block and Linear addressing.
func (a *Addresser) SetAddressing(m Addressing) error {
	var err error
	if m == Linear {
		err = bus.Modify(a.bus, regs.AWCOLOR, 0, regs.AWColorLinear)
	} else {
		err = bus.Modify(a.bus, regs.AWCOLOR, regs.AWColorLinear, 0)
	}
	if err != nil {
		return err
	}
	a.desc.Addressing = m
	return nil
}

// WithAddressing runs fn with addressing mode m and restores the previous
// mode afterwards.
func (a *Addresser) WithAddressing(m Addressing, fn func() error) (err error) {
	prev := a.desc.Addressing
	if prev == m {
		return fn()
	}
	if err := a.SetAddressing(m); err != nil {
		return err
	}
	defer func() {
		if rerr := a.SetAddressing(prev); rerr != nil {
			err = errors.Join(err, fmt.Errorf("canvas: restore addressing: %w", rerr))
		}
	}()
	return fn()
}

// AddressFromLineOffset converts a line offset into an arena byte address
// for the current width and color depth.
func (a *Addresser) AddressFromLineOffset(ln int) (uint32, error) {
	if !a.ready {
		return 0, ErrNoCanvas
	}
	stride := uint32(a.desc.Width * a.format.BytesPerPixel)
	lines := a.opts.MemSize / stride
	if ln < 0 || uint64(ln) >= uint64(lines) {
		return 0, fmt.Errorf("%w: line %d of %d", ErrOutOfRange, ln, lines)
	}
	return uint32(ln) * stride, nil
}

// SetWindow programs the active window.
func (a *Addresser) SetWindow(w Window) error {
	if w.Width <= 0 || w.Height <= 0 || !regs.Fits16(w.X, w.Y, w.Width, w.Height) {
		return fmt.Errorf("%w: window %+v", ErrInvalidArgument, w)
	}
	if err := a.writeWindow(w); err != nil {
		return err
	}
	a.pos.Window = w
	return nil
}

// SetCursor moves the pixel cursor to (x, y) on the canvas starting at line
// ln. The base register is programmed before the cursor.
func (a *Addresser) SetCursor(x, y, ln int) error {
	if !regs.Fits16(x, y) {
		return fmt.Errorf("%w: cursor (%d,%d)", ErrInvalidArgument, x, y)
	}
	base, err := a.AddressFromLineOffset(ln)
	if err != nil {
		return err
	}
	if err := bus.Write32(a.bus, regs.CVSSA0, base); err != nil {
		return err
	}
	a.pos.Base = base
	if err := a.writeCursor(base, x, y); err != nil {
		return err
	}
	a.pos.CursorX, a.pos.CursorY = x, y
	return nil
}

// Apply programs p in register order: base, canvas width, window origin,
// window size, cursor.
func (a *Addresser) Apply(p Position) error {
	if !a.ready {
		return ErrNoCanvas
	}
	if err := bus.Write32(a.bus, regs.CVSSA0, p.Base); err != nil {
		return err
	}
	a.pos.Base = p.Base
	if err := bus.Write16(a.bus, regs.CVSIMWTH0, uint16(p.Width)); err != nil {
		return err
	}
	a.pos.Width = p.Width
	if err := a.writeWindow(p.Window); err != nil {
		return err
	}
	a.pos.Window = p.Window
	if err := a.writeCursorWidth(p.Base, p.Width, p.CursorX, p.CursorY); err != nil {
		return err
	}
	a.pos.CursorX, a.pos.CursorY = p.CursorX, p.CursorY
	return nil
}

// WithPosition applies p, runs fn and restores the position that was active
// before the call, whether fn returns an error, succeeds or panics.
func (a *Addresser) WithPosition(p Position, fn func() error) (err error) {
	saved := a.pos
	defer func() {
		if rerr := a.Apply(saved); rerr != nil {
			err = errors.Join(err, fmt.Errorf("canvas: restore position: %w", rerr))
		}
	}()
	if err := a.Apply(p); err != nil {
		return err
	}
	return fn()
}

func (a *Addresser) writeWindow(w Window) error {
	if err := bus.Write16(a.bus, regs.AWULX0, uint16(w.X)); err != nil {
		return err
	}
	if err := bus.Write16(a.bus, regs.AWULY0, uint16(w.Y)); err != nil {
		return err
	}
	if err := bus.Write16(a.bus, regs.AWWTH0, uint16(w.Width)); err != nil {
		return err
	}
	return bus.Write16(a.bus, regs.AWHT0, uint16(w.Height))
}

func (a *Addresser) writeCursor(base uint32, x, y int) error {
	return a.writeCursorWidth(base, a.pos.Width, x, y)
}

func (a *Addresser) writeCursorWidth(base uint32, width, x, y int) error {
	if a.desc.Addressing == Linear {
		addr := uint64(base) + (uint64(y)*uint64(width)+uint64(x))*uint64(a.format.BytesPerPixel)
		if addr >= uint64(a.opts.MemSize) {
			return fmt.Errorf("%w: linear cursor 0x%X", ErrOutOfRange, addr)
		}
		return bus.Write32(a.bus, regs.CURH0, uint32(addr))
	}
	if err := bus.Write16(a.bus, regs.CURH0, uint16(x)); err != nil {
		return err
	}
	return bus.Write16(a.bus, regs.CURV0, uint16(y))
}
