package sim

import (
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/regs"
)

// Memory returns the SDRAM image. The slice shares storage with the
// Controller.
func (c *Controller) Memory() []byte { return c.sdram }

// Flash returns the serial flash image. The slice shares storage with the
// Controller; tests load DMA sources by copying into it.
func (c *Controller) Flash() []byte { return c.flash }

// Reg returns a register value without side effects.
func (c *Controller) Reg(addr byte) byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg[addr]
}

// Reg16 returns the little-endian value of two registers starting at lo.
func (c *Controller) Reg16(lo byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.u16(lo)
}

// Reg32 returns the little-endian value of four registers starting at lo.
func (c *Controller) Reg32(lo byte) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.u32(lo)
}

// Writes returns a copy of the register write trace.
func (c *Controller) Writes() []RegWrite {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]RegWrite(nil), c.trace...)
}

// ResetTrace clears the register write trace.
func (c *Controller) ResetTrace() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trace = nil
}

// Text returns the bytes written through the data port in text mode.
func (c *Controller) Text() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.text...)
}

// SPI returns the bytes sent through the SPI master data register while
// chip select was active.
func (c *Controller) SPI() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.spi...)
}

// FourByteMode reports whether the flash received the enter-4-byte command.
func (c *Controller) FourByteMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fourByte
}

// SetStuckBusy pins the core-busy status bit.
func (c *Controller) SetStuckBusy(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stuck = on
}

// Busy reports whether the core-busy bit would currently read as set.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isBusy()
}

// BTEOps returns the number of block transfers started.
func (c *Controller) BTEOps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bteOps
}

// DMAOps returns the number of DMA transfers started.
func (c *Controller) DMAOps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dmaOps
}

// DrawOps returns the number of draw engine shapes started.
func (c *Controller) DrawOps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawOps
}

// Vsync raises the vsync interrupt flag and reports whether the vsync
// interrupt is enabled, i.e. whether real hardware would assert its IRQ line.
func (c *Controller) Vsync() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reg[regs.INTF] |= regs.IRQVsync
	return c.reg[regs.INTEN]&regs.IRQVsync != 0
}

// Pixel returns a copy of the pixel at (x, y) of a surface with the given
// base and width, using the canvas color depth.
func (c *Controller) Pixel(base uint32, width, x, y int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	bpp := bppOf(c.depth())
	p := c.mem(base+uint32((y*width+x)*bpp), bpp)
	return append([]byte(nil), p...)
}

// LoadFlash copies img into the serial flash image at off.
func (c *Controller) LoadFlash(off int, img []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if off < 0 || off+len(img) > len(c.flash) {
		return fmt.Errorf("sim: %d byte image at %d exceeds %d byte flash", len(img), off, len(c.flash))
	}
	copy(c.flash[off:], img)
	return nil
}
