package ra8876

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/joshuapare/ra8876kit/internal/logger"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/alloc"
	"github.com/joshuapare/ra8876kit/ra8876/bte"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/dma"
	"github.com/joshuapare/ra8876kit/ra8876/draw"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Device is one RA8876 behind a register transport.
type Device struct {
	bus  bus.Bus
	opts Options

	canvas *canvas.Addresser
	engine *bte.Engine
	drawer *draw.Engine
	loader *dma.Loader
	mem    *alloc.Allocator

	// irq is set by HandleIRQ and consumed by QueryIRQ.
	irq atomic.Bool
}

// SetLogger installs l for every component. A nil l discards output.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// New builds a Device on b. A nil opts uses DefaultOptions.
func New(b bus.Bus, opts *Options) (*Device, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bus", ErrInvalidArgument)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.MemSize == 0 {
		o.MemSize = canvas.DefaultMemSize
	}
	if o.MemSize > regs.MemSizeMax {
		return nil, fmt.Errorf("%w: arena %d exceeds %d", ErrInvalidArgument, o.MemSize, regs.MemSizeMax)
	}
	dmaOpts := dma.DefaultOptions()
	if o.DMA != nil {
		*dmaOpts = *o.DMA
	}
	dmaOpts.Busy = o.Busy

	a := canvas.New(b, &canvas.Options{MemSize: o.MemSize, FIFO: o.FIFO})
	return &Device{
		bus:    b,
		opts:   o,
		canvas: a,
		engine: bte.New(a, &bte.Options{Busy: o.Busy}),
		drawer: draw.New(a, &draw.Options{Busy: o.Busy}),
		loader: dma.New(a, dmaOpts),
	}, nil
}

// Options returns a copy of the options the Device was built with.
func (d *Device) Options() Options { return d.opts }

// Bus returns the register transport.
func (d *Device) Bus() bus.Bus { return d.bus }

// Canvas returns the canvas addresser.
func (d *Device) Canvas() *canvas.Addresser { return d.canvas }

// BTE returns the block transfer engine.
func (d *Device) BTE() *bte.Engine { return d.engine }

// Draw returns the geometric draw engine.
func (d *Device) Draw() *draw.Engine { return d.drawer }

// DMA returns the serial flash loader.
func (d *Device) DMA() *dma.Loader { return d.loader }

// Allocator returns the SDRAM allocator, or nil before the first Allocate.
func (d *Device) Allocator() *alloc.Allocator { return d.mem }

// SetCanvas programs the canvas. See canvas.Addresser.SetCanvas.
func (d *Device) SetCanvas(desc canvas.Descriptor) error {
	if d.mem != nil {
		bpp := desc.Mode.BytesPerPixel()
		if alloc.BlockSizeFor(desc.Width, bpp) != d.mem.BlockSize() {
			logger.Warn("ra8876: canvas geometry changed after allocation",
				"width", desc.Width, "mode", desc.Mode)
		}
	}
	return wrap(d.canvas.SetCanvas(desc))
}

// Screen returns the primary canvas as a block transfer surface.
func (d *Device) Screen() bte.Region {
	desc := d.canvas.Descriptor()
	return bte.Surface(desc.Base, desc.Width, desc.Height)
}

// Allocate reserves size bytes of SDRAM and returns their byte address.
func (d *Device) Allocate(size uint32) (uint32, error) {
	m, err := d.allocator()
	if err != nil {
		return 0, err
	}
	off, err := m.Allocate(size)
	return off, wrap(err)
}

// Free releases the run starting at offset.
func (d *Device) Free(offset uint32) error {
	if d.mem == nil {
		return fmt.Errorf("%w: 0x%X before any allocation", ErrOutOfBounds, offset)
	}
	return d.mem.Free(offset)
}

// MemoryUsed returns the share of allocator blocks in use, 0–100.
func (d *Device) MemoryUsed() int {
	if d.mem == nil {
		return 0
	}
	return d.mem.UsedPercentage()
}

// Arena returns the allocator, building it from the current canvas on the
// first call.
func (d *Device) Arena() (*alloc.Allocator, error) {
	return d.allocator()
}

func (d *Device) allocator() (*alloc.Allocator, error) {
	if d.mem != nil {
		return d.mem, nil
	}
	desc := d.canvas.Descriptor()
	bpp := d.canvas.Format().BytesPerPixel
	if bpp == 0 {
		return nil, ErrNoCanvas
	}
	cfg := alloc.Config{
		MemSize:        d.opts.MemSize,
		BlockSize:      alloc.BlockSizeFor(desc.Width, bpp),
		StartBlock:     d.opts.StartBlock,
		LargeThreshold: d.opts.LargeThreshold,
		Policy:         d.opts.Policy,
	}
	if d.opts.ReserveCanvas {
		end := uint64(desc.Base) + uint64(desc.Width*desc.Height*bpp)
		bs := uint64(cfg.BlockSize)
		cfg.StartBlock = int((end + bs - 1) / bs)
	}
	m, err := alloc.New(cfg)
	if err != nil {
		return nil, wrap(err)
	}
	logger.Debug("ra8876: allocator ready",
		"block_size", cfg.BlockSize, "blocks", m.Blocks(), "start", cfg.StartBlock)
	d.mem = m
	return m, nil
}

// LineOffset converts an allocated byte address to the line offset used by
// the streaming calls. ok is false when addr is not line aligned.
func (d *Device) LineOffset(addr uint32) (ln int, ok bool) {
	stride := uint32(d.canvas.Descriptor().Width * d.canvas.Format().BytesPerPixel)
	if stride == 0 {
		return 0, false
	}
	return int(addr / stride), addr%stride == 0
}

// DisplayMainWindow shows the image at SDRAM offset with its upper-left
// corner at (x, y). The image width follows the canvas.
func (d *Device) DisplayMainWindow(x, y int, offset uint32) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: main window (%d,%d)", ErrInvalidArgument, x, y)
	}
	if offset >= d.opts.MemSize {
		return fmt.Errorf("%w: main window at 0x%X", ErrOutOfRange, offset)
	}
	if err := bus.Write32(d.bus, regs.MISA0, offset); err != nil {
		return err
	}
	if err := bus.Write16(d.bus, regs.MIW0, uint16(d.canvas.Descriptor().Width)); err != nil {
		return err
	}
	if err := bus.Write16(d.bus, regs.MWULX0, uint16(x)); err != nil {
		return err
	}
	return bus.Write16(d.bus, regs.MWULY0, uint16(y))
}

// DisplayOn turns the panel output on or off.
func (d *Device) DisplayOn(on bool) error {
	if on {
		return bus.Modify(d.bus, regs.DPCR, 0, regs.DPCRDisplayOn)
	}
	return bus.Modify(d.bus, regs.DPCR, regs.DPCRDisplayOn, 0)
}

// GraphicMode routes data-port writes to image memory as pixels.
func (d *Device) GraphicMode() error {
	return bus.Modify(d.bus, regs.ICR, regs.ICRTextMode|regs.ICRMemSelect, 0)
}

// TextMode routes data-port writes to the character engine.
func (d *Device) TextMode() error {
	return bus.Modify(d.bus, regs.ICR, regs.ICRMemSelect, regs.ICRTextMode)
}

// Clear fills the whole canvas with c.
func (d *Device) Clear(ctx context.Context, c canvas.Color) error {
	desc := d.canvas.Descriptor()
	if d.canvas.Format().BytesPerPixel == 0 {
		return ErrNoCanvas
	}
	_, err := d.engine.SolidFill(ctx, d.Screen(), bte.Size{Width: desc.Width, Height: desc.Height}, c)
	return wrap(err)
}

// WaitReady waits for the controller to leave the inhibit state and for
// SDRAM to report ready.
func (d *Device) WaitReady(ctx context.Context) error {
	if err := poll.StatusClear(ctx, d.bus, regs.StatusInhibit, d.opts.Ready); err != nil {
		logger.Warn("ra8876: controller not ready", "error", err)
		return fmt.Errorf("ra8876: ic ready: %w", err)
	}
	if err := poll.StatusSet(ctx, d.bus, regs.StatusSDRAMReady, d.opts.Ready); err != nil {
		logger.Warn("ra8876: sdram not ready", "error", err)
		return fmt.Errorf("ra8876: sdram ready: %w", err)
	}
	return nil
}
