package dma

import (
	"context"
	"fmt"
	"time"

	"github.com/joshuapare/ra8876kit/internal/logger"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// enter4ByteCmd is the serial flash "enter 4-byte address mode" instruction.
const enter4ByteCmd = 0xB7

// Loader issues serial flash DMA transfers onto a canvas.
type Loader struct {
	canvas *canvas.Addresser
	bus    bus.Bus
	opts   Options
}

// New returns a Loader. A nil opts uses DefaultOptions.
func New(a *canvas.Addresser, opts *Options) *Loader {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Loader{canvas: a, bus: a.Bus(), opts: *opts}
}

// Block copies a picture to (b.X, b.Y) of the current canvas.
func (l *Loader) Block(ctx context.Context, b Block) error {
	if b.PictureWidth <= 0 || b.PictureHeight <= 0 {
		return fmt.Errorf("%w: picture %dx%d", ErrInvalidArgument, b.PictureWidth, b.PictureHeight)
	}
	if !regs.Fits16(b.X, b.Y, b.PictureWidth, b.PictureHeight, b.CropWidth, b.CropHeight) {
		return fmt.Errorf("%w: block %+v exceeds the 16-bit registers", ErrInvalidArgument, b)
	}
	if l.canvas.Format().BytesPerPixel == 0 {
		return canvas.ErrNoCanvas
	}
	w, h := crop(b.CropWidth, b.PictureWidth), crop(b.CropHeight, b.PictureHeight)

	return l.canvas.WithAddressing(canvas.Block, func() error {
		if err := l.setup(); err != nil {
			return err
		}
		for _, r := range []struct {
			lo byte
			v  int
		}{
			{regs.DMADX0, b.X},
			{regs.DMADY0, b.Y},
			{regs.DMAWWTH0, w},
			{regs.DMAWHIGH0, h},
			{regs.DMASWTH0, b.PictureWidth},
		} {
			if err := bus.Write16(l.bus, r.lo, uint16(r.v)); err != nil {
				return err
			}
		}
		logger.Debug("dma: block", "src", b.Src, "x", b.X, "y", b.Y, "w", w, "h", h)
		return l.start(ctx, b.Src)
	})
}

// Linear copies t.Count bytes to the flat address t.Dest.
func (l *Loader) Linear(ctx context.Context, t Linear) error {
	if t.Count == 0 {
		return fmt.Errorf("%w: zero byte count", ErrInvalidArgument)
	}
	if end := uint64(t.Dest) + uint64(t.Count); end > uint64(l.canvas.MemSize()) {
		return fmt.Errorf("%w: dma ends at 0x%X", canvas.ErrOutOfRange, end)
	}
	if l.canvas.Format().BytesPerPixel == 0 {
		return canvas.ErrNoCanvas
	}

	return l.canvas.WithAddressing(canvas.Linear, func() error {
		if err := l.setup(); err != nil {
			return err
		}
		// in linear mode the X/Y and width/height pairs hold 32-bit values
		if err := bus.Write32(l.bus, regs.DMADX0, t.Dest); err != nil {
			return err
		}
		if err := bus.Write32(l.bus, regs.DMAWWTH0, t.Count); err != nil {
			return err
		}
		logger.Debug("dma: linear", "src", t.Src, "dest", t.Dest, "count", t.Count)
		return l.start(ctx, t.Src)
	})
}

// EnterFourByteMode switches the flash to 4-byte addressing.
func (l *Loader) EnterFourByteMode(ctx context.Context) error {
	var sel byte
	if l.opts.Flash == 1 {
		sel = regs.SPIMSelect1
	}
	if err := l.bus.WriteReg(regs.SPIMCR2, sel); err != nil {
		return err
	}
	if err := l.bus.WriteReg(regs.SPIMCR2, sel|regs.SPIMCSActive); err != nil {
		return err
	}
	if err := l.bus.WriteReg(regs.SPIDR, enter4ByteCmd); err != nil {
		return err
	}
	if err := sleep(ctx, l.opts.CommandDelay); err != nil {
		return err
	}
	return l.bus.WriteReg(regs.SPIMCR2, sel)
}

func (l *Loader) setup() error {
	ctrl := regs.SFLModeDMA | regs.SFLFollowStd | regs.SFLFastRead8
	if l.opts.Flash == 1 {
		ctrl |= regs.SFLSelect1
	}
	if l.opts.Addr32 {
		ctrl |= regs.SFLAddr32
	}
	if err := l.bus.WriteReg(regs.SFLCTRL, ctrl); err != nil {
		return err
	}
	return l.bus.WriteReg(regs.SPIDIVSOR, l.opts.Divisor)
}

func (l *Loader) start(ctx context.Context, src uint32) error {
	if err := bus.Write32(l.bus, regs.DMASSTR0, src); err != nil {
		return err
	}
	if err := l.bus.WriteReg(regs.DMACTRL, regs.DMAStart); err != nil {
		return err
	}
	if err := poll.StatusClear(ctx, l.bus, regs.StatusCoreBusy, l.opts.Busy); err != nil {
		logger.Warn("dma: busy did not clear", "error", err)
		return fmt.Errorf("dma: wait: %w", err)
	}
	return nil
}

func crop(c, full int) int {
	if c <= 0 || c > full {
		return full
	}
	return c
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
