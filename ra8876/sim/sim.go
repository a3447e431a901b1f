package sim

import (
	"sync"

	"github.com/joshuapare/ra8876kit/internal/buf"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
)

var (
	_ bus.Bus      = (*Controller)(nil)
	_ bus.Streamer = (*Controller)(nil)
)

// Options configures a Controller.
type Options struct {
	// MemSize is the SDRAM size in bytes.
	// Default: 32 MiB
	MemSize int

	// FlashSize is the serial flash image size in bytes.
	// Default: 1 MiB
	FlashSize int

	// BusyReads is the number of status reads that report core busy after a
	// block transfer, DMA or text write completes.
	// Default: 2
	BusyReads int

	// ReadyAfter is the number of status reads before SDRAM ready is
	// reported and the inhibit bit clears.
	// Default: 0
	ReadyAfter int
}

// DefaultOptions returns the options used by New(nil).
func DefaultOptions() *Options {
	return &Options{
		MemSize:   regs.MemSizeMax,
		FlashSize: 1 << 20,
		BusyReads: 2,
	}
}

// RegWrite is one traced register write.
type RegWrite struct {
	Addr, Val byte
}

// Controller is a simulated RA8876. It is safe for concurrent use.
type Controller struct {
	mu   sync.Mutex
	opts Options

	reg   [256]byte
	sdram []byte
	flash []byte

	statusReads int
	busy        int
	stuck       bool

	// graphic cursor
	cx, cy int
	lin    uint32
	sub    int
	dummy  bool

	mpu *mpuStream

	text     []byte
	spi      []byte
	fourByte bool

	trace   []RegWrite
	bteOps  int
	dmaOps  int
	drawOps int
}

// New returns a Controller with zeroed registers and memory.
// A nil opts uses DefaultOptions.
func New(opts *Options) *Controller {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.MemSize <= 0 {
		o.MemSize = regs.MemSizeMax
	}
	if o.FlashSize <= 0 {
		o.FlashSize = 1 << 20
	}
	return &Controller{
		opts:  o,
		sdram: make([]byte, o.MemSize),
		flash: make([]byte, o.FlashSize),
	}
}

// WriteReg implements bus.Bus.
func (c *Controller) WriteReg(addr, val byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trace = append(c.trace, RegWrite{addr, val})
	c.write(addr, val)
	return nil
}

// ReadReg implements bus.Bus.
func (c *Controller) ReadReg(addr byte) (byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch addr {
	case regs.MRWDP:
		return c.dataRead(), nil
	case regs.BTECTRL0:
		if !c.isBusy() {
			return c.reg[addr] &^ regs.BTEEnable, nil
		}
	case regs.DMACTRL:
		if !c.isBusy() {
			return c.reg[addr] &^ regs.DMAStart, nil
		}
	case regs.DCR0, regs.DCR1:
		if !c.isBusy() {
			return c.reg[addr] &^ regs.DrawStart, nil
		}
	}
	return c.reg[addr], nil
}

// Status implements bus.Bus.
func (c *Controller) Status() (byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statusReads++

	s := regs.StatusWriteFIFOEmpty
	if c.statusReads > c.opts.ReadyAfter {
		s |= regs.StatusSDRAMReady
	} else {
		s |= regs.StatusInhibit
	}
	if c.isBusy() {
		s |= regs.StatusCoreBusy
	}
	if c.busy > 0 {
		c.busy--
	}
	return s, nil
}

// WriteData implements bus.Streamer.
func (c *Controller) WriteData(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range p {
		c.dataWrite(v)
	}
	return nil
}

// ReadData implements bus.Streamer.
func (c *Controller) ReadData(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range p {
		p[i] = c.dataRead()
	}
	return nil
}

func (c *Controller) write(addr, val byte) {
	switch addr {
	case regs.MRWDP:
		c.dataWrite(val)
		return
	case regs.INTF:
		c.reg[addr] &^= val
		return
	}
	c.reg[addr] = val

	switch {
	case addr >= regs.CURH0 && addr <= regs.CURV0+1:
		c.loadCursor()
	case addr == regs.BTECTRL0 && val&regs.BTEEnable != 0:
		c.startBTE()
	case addr == regs.DMACTRL && val&regs.DMAStart != 0:
		c.runDMA()
	case (addr == regs.DCR0 || addr == regs.DCR1) && val&regs.DrawStart != 0:
		c.runDraw(addr, val)
	case addr == regs.SPIDR && c.reg[regs.SPIMCR2]&regs.SPIMCSActive != 0:
		c.spi = append(c.spi, val)
		if val == 0xB7 {
			c.fourByte = true
		}
	}
}

func (c *Controller) isBusy() bool {
	return c.stuck || c.mpu != nil || c.busy > 0
}

func (c *Controller) u16(lo byte) int {
	return int(buf.U16LE(c.reg[lo : int(lo)+2]))
}

func (c *Controller) u32(lo byte) uint32 {
	return buf.U32LE(c.reg[lo : int(lo)+4])
}

func (c *Controller) depth() byte {
	return c.reg[regs.AWCOLOR] & regs.AWColorDepthMask
}

func (c *Controller) linear() bool {
	return c.reg[regs.AWCOLOR]&regs.AWColorLinear != 0
}

// mem returns n bytes of SDRAM at off, or nil when out of range.
func (c *Controller) mem(off uint32, n int) []byte {
	s, ok := buf.Window(c.sdram, off, n)
	if !ok {
		return nil
	}
	return s
}
