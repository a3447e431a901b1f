package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return New(&Options{MemSize: 1 << 20, FlashSize: 1 << 16, BusyReads: 1})
}

// setup16 programs a 16 bpp block-mode canvas of the given width at base 0
// with a full window.
func setup16(t *testing.T, c *Controller, width, height int) {
	t.Helper()
	require.NoError(t, c.WriteReg(regs.AWCOLOR, regs.Depth16))
	require.NoError(t, c.WriteReg(regs.BTECOLR, regs.Depth16<<5|regs.Depth16<<2|regs.Depth16))
	require.NoError(t, bus.Write32(c, regs.CVSSA0, 0))
	require.NoError(t, bus.Write16(c, regs.CVSIMWTH0, uint16(width)))
	require.NoError(t, bus.Write16(c, regs.AWULX0, 0))
	require.NoError(t, bus.Write16(c, regs.AWULY0, 0))
	require.NoError(t, bus.Write16(c, regs.AWWTH0, uint16(width)))
	require.NoError(t, bus.Write16(c, regs.AWHT0, uint16(height)))
}

func TestDataPortWrapsInWindow(t *testing.T) {
	c := newTestController(t)
	setup16(t, c, 16, 16)
	require.NoError(t, bus.Write16(c, regs.AWULX0, 2))
	require.NoError(t, bus.Write16(c, regs.AWULY0, 3))
	require.NoError(t, bus.Write16(c, regs.AWWTH0, 2))
	require.NoError(t, bus.Write16(c, regs.AWHT0, 2))
	require.NoError(t, bus.Write16(c, regs.CURH0, 2))
	require.NoError(t, bus.Write16(c, regs.CURV0, 3))

	require.NoError(t, c.WriteData([]byte{1, 1, 2, 2, 3, 3, 4, 4}))

	assert.Equal(t, []byte{1, 1}, c.Pixel(0, 16, 2, 3))
	assert.Equal(t, []byte{2, 2}, c.Pixel(0, 16, 3, 3))
	assert.Equal(t, []byte{3, 3}, c.Pixel(0, 16, 2, 4))
	assert.Equal(t, []byte{4, 4}, c.Pixel(0, 16, 3, 4))
	assert.Equal(t, []byte{0, 0}, c.Pixel(0, 16, 4, 3), "outside the window")
}

func TestDataPortReadNeedsDummy(t *testing.T) {
	c := newTestController(t)
	setup16(t, c, 8, 8)
	copy(c.Memory(), []byte{0xAA, 0xBB, 0xCC, 0xDD})
	require.NoError(t, bus.Write16(c, regs.CURH0, 0))
	require.NoError(t, bus.Write16(c, regs.CURV0, 0))

	p := make([]byte, 5)
	require.NoError(t, c.ReadData(p))
	assert.Equal(t, []byte{0, 0xAA, 0xBB, 0xCC, 0xDD}, p)
}

func TestLinearPort(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.WriteReg(regs.AWCOLOR, regs.AWColorLinear|regs.Depth16))
	require.NoError(t, bus.Write32(c, regs.CURH0, 0x100))
	require.NoError(t, c.WriteData([]byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3}, c.Memory()[0x100:0x103])
}

func TestSolidFillAndBusy(t *testing.T) {
	c := newTestController(t)
	setup16(t, c, 8, 8)
	require.NoError(t, bus.Write32(c, regs.DTSTR0, 0))
	require.NoError(t, bus.Write16(c, regs.DTWTH0, 8))
	require.NoError(t, bus.Write16(c, regs.DTX0, 1))
	require.NoError(t, bus.Write16(c, regs.DTY0, 1))
	require.NoError(t, bus.Write16(c, regs.BTEWTH0, 2))
	require.NoError(t, bus.Write16(c, regs.BTEHIG0, 1))
	require.NoError(t, c.WriteReg(regs.FGCR, 0xF8))
	require.NoError(t, c.WriteReg(regs.FGCG, 0))
	require.NoError(t, c.WriteReg(regs.FGCB, 0))
	require.NoError(t, c.WriteReg(regs.BTECTRL1, regs.OpSolidFill))
	require.NoError(t, c.WriteReg(regs.BTECTRL0, regs.BTEEnable))

	s, err := c.Status()
	require.NoError(t, err)
	assert.NotZero(t, s&regs.StatusCoreBusy)
	s, err = c.Status()
	require.NoError(t, err)
	assert.Zero(t, s&regs.StatusCoreBusy)

	assert.Equal(t, []byte{0x00, 0xF8}, c.Pixel(0, 8, 1, 1))
	assert.Equal(t, []byte{0x00, 0xF8}, c.Pixel(0, 8, 2, 1))
	assert.Equal(t, []byte{0, 0}, c.Pixel(0, 8, 3, 1))
	assert.Equal(t, 1, c.BTEOps())
}

func TestColorExpansionStream(t *testing.T) {
	c := newTestController(t)
	setup16(t, c, 16, 4)
	require.NoError(t, bus.Write16(c, regs.DTWTH0, 16))
	require.NoError(t, bus.Write16(c, regs.BTEWTH0, 10))
	require.NoError(t, bus.Write16(c, regs.BTEHIG0, 1))
	require.NoError(t, c.WriteReg(regs.FGCR, 0xFF))
	require.NoError(t, c.WriteReg(regs.BGCB, 0xFF))
	require.NoError(t, c.WriteReg(regs.BTECTRL1, regs.ExpansionBusWidth8<<4|regs.OpColorExpansion))
	require.NoError(t, c.WriteReg(regs.BTECTRL0, regs.BTEEnable))
	assert.True(t, c.Busy(), "waiting for MPU data")

	require.NoError(t, c.WriteData([]byte{0x80, 0x40}))
	assert.Equal(t, []byte{0x00, 0xF8}, c.Pixel(0, 16, 0, 0), "bit set: foreground")
	assert.Equal(t, []byte{0x1F, 0x00}, c.Pixel(0, 16, 1, 0), "bit clear: background")
	assert.Equal(t, []byte{0x00, 0xF8}, c.Pixel(0, 16, 9, 0))
	assert.Equal(t, []byte{0, 0}, c.Pixel(0, 16, 10, 0), "padding bits ignored")
}

func TestDMABlock(t *testing.T) {
	c := newTestController(t)
	setup16(t, c, 8, 8)
	for i := range 4 * 2 * 2 {
		c.Flash()[0x10+i] = byte(i + 1)
	}
	require.NoError(t, bus.Write32(c, regs.DMASSTR0, 0x10))
	require.NoError(t, bus.Write16(c, regs.DMADX0, 1))
	require.NoError(t, bus.Write16(c, regs.DMADY0, 2))
	require.NoError(t, bus.Write16(c, regs.DMAWWTH0, 2))
	require.NoError(t, bus.Write16(c, regs.DMAWHIGH0, 2))
	require.NoError(t, bus.Write16(c, regs.DMASWTH0, 4))
	require.NoError(t, c.WriteReg(regs.SFLCTRL, regs.SFLModeDMA|regs.SFLAddr32))
	require.NoError(t, c.WriteReg(regs.DMACTRL, regs.DMAStart))

	assert.Equal(t, []byte{1, 2}, c.Pixel(0, 8, 1, 2))
	assert.Equal(t, []byte{3, 4}, c.Pixel(0, 8, 2, 2))
	assert.Equal(t, []byte{9, 10}, c.Pixel(0, 8, 1, 3), "second row starts one picture stride later")
	assert.Equal(t, 1, c.DMAOps())
}

func TestInterruptFlagWriteOneToClear(t *testing.T) {
	c := newTestController(t)
	assert.False(t, c.Vsync())
	require.NoError(t, c.WriteReg(regs.INTEN, regs.IRQVsync))
	assert.True(t, c.Vsync())
	assert.Equal(t, regs.IRQVsync, c.Reg(regs.INTF))

	require.NoError(t, c.WriteReg(regs.INTF, regs.IRQVsync))
	assert.Zero(t, c.Reg(regs.INTF))
}

func TestReadyAfter(t *testing.T) {
	c := New(&Options{MemSize: 1024, ReadyAfter: 2})
	for range 2 {
		s, _ := c.Status()
		assert.Zero(t, s&regs.StatusSDRAMReady)
		assert.NotZero(t, s&regs.StatusInhibit)
	}
	s, _ := c.Status()
	assert.NotZero(t, s&regs.StatusSDRAMReady)
}

func TestFourByteCommand(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.WriteReg(regs.SPIDR, 0xB7))
	assert.False(t, c.FourByteMode(), "chip select inactive")

	require.NoError(t, c.WriteReg(regs.SPIMCR2, regs.SPIMSelect1|regs.SPIMCSActive))
	require.NoError(t, c.WriteReg(regs.SPIDR, 0xB7))
	assert.True(t, c.FourByteMode())
	assert.Equal(t, []byte{0xB7}, c.SPI())
}

func TestRopTable(t *testing.T) {
	const s0, s1 = 0b1100, 0b1010
	want := map[byte]byte{
		0: 0x00, 3: ^byte(s0), 5: ^byte(s1), 6: s0 ^ s1, 8: s0 & s1,
		10: s1, 12: s0, 14: s0 | s1, 15: 0xFF,
	}
	for code, v := range want {
		assert.Equal(t, v, rop(code, s0, s1), "rop %d", code)
	}
}

func TestLoadFlash(t *testing.T) {
	c := New(&Options{FlashSize: 16})

	require.NoError(t, c.LoadFlash(4, []byte{1, 2, 3}))
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 0}, c.Flash()[:8])

	require.Error(t, c.LoadFlash(14, []byte{1, 2, 3}))
	require.Error(t, c.LoadFlash(-1, []byte{1}))
}
