package sim

import (
	"github.com/joshuapare/ra8876kit/internal/buf"
	"github.com/joshuapare/ra8876kit/internal/regs"
)

func (c *Controller) flashAt(off uint32, n int) []byte {
	p, _ := buf.Window(c.flash, off, n)
	return p
}

func (c *Controller) runDMA() {
	c.dmaOps++
	c.busy = c.opts.BusyReads

	src := c.u32(regs.DMASSTR0)
	if c.reg[regs.SFLCTRL]&regs.SFLAddr32 == 0 {
		src &= 0x00FFFFFF
	}

	if c.linear() {
		dst, n := c.u32(regs.DMADX0), int(c.u32(regs.DMAWWTH0))
		from, to := c.flashAt(src, n), c.mem(dst, n)
		if from != nil && to != nil {
			copy(to, from)
		}
		return
	}

	x, y := c.u16(regs.DMADX0), c.u16(regs.DMADY0)
	w, h := c.u16(regs.DMAWWTH0), c.u16(regs.DMAWHIGH0)
	sw := c.u16(regs.DMASWTH0)
	base, cw := c.u32(regs.CVSSA0), c.u16(regs.CVSIMWTH0)
	bpp := bppOf(c.depth())

	for r := 0; r < h; r++ {
		from := c.flashAt(src+uint32(r*sw*bpp), w*bpp)
		to := c.mem(base+uint32(((y+r)*cw+x)*bpp), w*bpp)
		if from == nil || to == nil {
			continue
		}
		copy(to, from)
	}
}
