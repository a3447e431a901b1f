package spidev

import (
	"fmt"
	"sync"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
)

var (
	_ bus.Bus      = (*Bus)(nil)
	_ bus.Streamer = (*Bus)(nil)
)

// Cycle bytes that open each SPI frame.
const (
	CmdWrite   byte = 0x00
	StatusRead byte = 0x40
	DataWrite  byte = 0x80
	DataRead   byte = 0xC0
)

// Options configures the SPI link.
type Options struct {
	// Mode is the SPI clock polarity/phase mode, 0–3.
	// Default: 0
	Mode uint8

	// SpeedHz is the maximum SCLK frequency.
	// Default: 4 MHz
	SpeedHz uint32

	// MaxTransfer caps the bytes in one frame, cycle byte included. It must
	// not exceed the spidev driver's bufsiz.
	// Default: 4096
	MaxTransfer int
}

// DefaultOptions returns conservative settings that work on most boards.
func DefaultOptions() *Options {
	return &Options{
		Mode:        0,
		SpeedHz:     4_000_000,
		MaxTransfer: 4096,
	}
}

func (o *Options) validate() error {
	if o.Mode > 3 {
		return fmt.Errorf("%w: spi mode %d", ErrInvalidArgument, o.Mode)
	}
	if o.SpeedHz == 0 {
		return fmt.Errorf("%w: zero clock", ErrInvalidArgument)
	}
	if o.MaxTransfer < 2 {
		return fmt.Errorf("%w: max transfer %d", ErrInvalidArgument, o.MaxTransfer)
	}
	return nil
}

// Transferer runs one full-duplex SPI transaction with chip select held for
// its duration. rx is nil or as long as tx.
type Transferer interface {
	Transfer(tx, rx []byte) error
	Close() error
}

// Bus frames register and data-port accesses onto a Transferer. It is safe
// for concurrent use; each access is atomic.
type Bus struct {
	mu     sync.Mutex
	t      Transferer
	opts   Options
	closed bool
}

// NewBus returns a Bus on t. A nil opts uses DefaultOptions.
func NewBus(t Transferer, opts *Options) (*Bus, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil transferer", ErrInvalidArgument)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Bus{t: t, opts: o}, nil
}

// Path returns the device node for SPI bus b, chip select cs.
func Path(b, cs int) string {
	return fmt.Sprintf("/dev/spidev%d.%d", b, cs)
}

// Options returns the link settings.
func (b *Bus) Options() Options { return b.opts }

// WriteReg implements bus.Bus.
func (b *Bus) WriteReg(addr, val byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.sel(addr); err != nil {
		return err
	}
	return b.xfer([]byte{DataWrite, val}, nil)
}

// ReadReg implements bus.Bus.
func (b *Bus) ReadReg(addr byte) (byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.sel(addr); err != nil {
		return 0, err
	}
	return b.read(DataRead)
}

// Status implements bus.Bus.
func (b *Bus) Status() (byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read(StatusRead)
}

// WriteData implements bus.Streamer. p is split into frames of at most
// MaxTransfer bytes.
func (b *Bus) WriteData(p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(p) == 0 {
		return nil
	}
	if err := b.sel(regs.MRWDP); err != nil {
		return err
	}
	chunk := b.opts.MaxTransfer - 1
	frame := make([]byte, 0, min(len(p), chunk)+1)
	for len(p) > 0 {
		n := min(len(p), chunk)
		frame = append(append(frame[:0], DataWrite), p[:n]...)
		if err := b.xfer(frame, nil); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// ReadData implements bus.Streamer. Reads go one byte per frame; burst
// reads return unreliable data on this controller.
func (b *Bus) ReadData(p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(p) == 0 {
		return nil
	}
	if err := b.sel(regs.MRWDP); err != nil {
		return err
	}
	for i := range p {
		v, err := b.read(DataRead)
		if err != nil {
			return err
		}
		p[i] = v
	}
	return nil
}

// Close releases the transferer. Further calls return ErrClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.t.Close()
}

func (b *Bus) sel(addr byte) error {
	return b.xfer([]byte{CmdWrite, addr}, nil)
}

func (b *Bus) read(cycle byte) (byte, error) {
	var rx [2]byte
	if err := b.xfer([]byte{cycle, 0}, rx[:]); err != nil {
		return 0, err
	}
	return rx[1], nil
}

func (b *Bus) xfer(tx, rx []byte) error {
	if b.closed {
		return ErrClosed
	}
	if err := b.t.Transfer(tx, rx); err != nil {
		return fmt.Errorf("spidev: transfer %02Xh: %w", tx[0], err)
	}
	return nil
}
