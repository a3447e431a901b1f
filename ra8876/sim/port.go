package sim

import "github.com/joshuapare/ra8876kit/internal/regs"

func (c *Controller) loadCursor() {
	c.lin = c.u32(regs.CURH0)
	c.cx = c.u16(regs.CURH0)
	c.cy = c.u16(regs.CURV0)
	c.sub = 0
	c.dummy = true
}

func (c *Controller) cursorAddr() uint32 {
	if c.linear() {
		return c.lin
	}
	bpp := bppOf(c.depth())
	return c.u32(regs.CVSSA0) + uint32((c.cy*c.u16(regs.CVSIMWTH0)+c.cx)*bpp+c.sub)
}

func (c *Controller) advance() {
	if c.linear() {
		c.lin++
		return
	}
	c.sub++
	if c.sub < bppOf(c.depth()) {
		return
	}
	c.sub = 0
	c.cx++
	wx, wy := c.u16(regs.AWULX0), c.u16(regs.AWULY0)
	if c.cx >= wx+c.u16(regs.AWWTH0) {
		c.cx = wx
		c.cy++
		if c.cy >= wy+c.u16(regs.AWHT0) {
			c.cy = wy
		}
	}
}

func (c *Controller) dataWrite(v byte) {
	if c.mpu != nil {
		c.mpu.feed(c, v)
		return
	}
	if c.reg[regs.ICR]&regs.ICRTextMode != 0 {
		c.text = append(c.text, v)
		c.busy = c.opts.BusyReads
		return
	}
	if p := c.mem(c.cursorAddr(), 1); p != nil {
		p[0] = v
	}
	c.dummy = false
	c.advance()
}

func (c *Controller) dataRead() byte {
	if c.dummy {
		c.dummy = false
		return 0
	}
	var v byte
	if p := c.mem(c.cursorAddr(), 1); p != nil {
		v = p[0]
	}
	c.advance()
	return v
}
