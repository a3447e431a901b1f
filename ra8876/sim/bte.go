package sim

import (
	"bytes"

	"github.com/joshuapare/ra8876kit/internal/regs"
)

type surface struct {
	addr  uint32
	width int
	x, y  int
}

func (s surface) at(i, j, bpp int) uint32 {
	return s.addr + uint32(((s.y+j)*s.width+s.x+i)*bpp)
}

type geometry struct {
	s0, s1, dt surface
	w, h       int
	depth      byte
	bpp        int
}

func (c *Controller) geometry() geometry {
	depth := c.reg[regs.BTECOLR] & 0x03
	return geometry{
		s0:    surface{c.u32(regs.S0STR0), c.u16(regs.S0WTH0), c.u16(regs.S0X0), c.u16(regs.S0Y0)},
		s1:    surface{c.u32(regs.S1STR0), c.u16(regs.S1WTH0), c.u16(regs.S1X0), c.u16(regs.S1Y0)},
		dt:    surface{c.u32(regs.DTSTR0), c.u16(regs.DTWTH0), c.u16(regs.DTX0), c.u16(regs.DTY0)},
		w:     c.u16(regs.BTEWTH0),
		h:     c.u16(regs.BTEHIG0),
		depth: depth,
		bpp:   bppOf(depth),
	}
}

// colorReg packs the R, G, B registers starting at first in the given depth.
func (c *Controller) colorReg(first byte, depth byte) []byte {
	out := make([]byte, bppOf(depth))
	pack(depth, c.reg[first], c.reg[first+1], c.reg[first+2], out)
	return out
}

func (c *Controller) startBTE() {
	c.bteOps++
	g := c.geometry()
	ctrl1 := c.reg[regs.BTECTRL1]
	op, code := ctrl1&0x0F, ctrl1>>4

	switch op {
	case regs.OpMPUWriteROP, regs.OpMPUWriteChroma, regs.OpColorExpansion, regs.OpColorExpansionChroma:
		c.mpu = newMPUStream(c, op, code, g)
		if c.mpu.total == 0 {
			c.mpu = nil
		}
		return
	}

	// results are computed before any write so overlapping copies read
	// unmodified source pixels
	type px struct {
		off uint32
		val []byte
	}
	var out []px
	key := c.colorReg(regs.BGCR, g.depth)
	fg := c.colorReg(regs.FGCR, g.depth)
	pat := 8
	if c.reg[regs.BTECTRL0]&regs.BTEPattern16x16 != 0 {
		pat = 16
	}
	alpha := int(c.reg[regs.APBCTRL] & 0x3F)
	if alpha > 32 {
		alpha = 32
	}

	for j := 0; j < g.h; j++ {
		for i := 0; i < g.w; i++ {
			doff := g.dt.at(i, j, g.bpp)
			d := c.mem(doff, g.bpp)
			if d == nil {
				continue
			}
			var val []byte
			switch op {
			case regs.OpMemoryCopyROP:
				s0, s1 := c.mem(g.s0.at(i, j, g.bpp), g.bpp), c.mem(g.s1.at(i, j, g.bpp), g.bpp)
				if s0 == nil || s1 == nil {
					continue
				}
				val = make([]byte, g.bpp)
				for k := range val {
					val[k] = rop(code, s0[k], s1[k])
				}
			case regs.OpMemoryCopyChroma:
				s0 := c.mem(g.s0.at(i, j, g.bpp), g.bpp)
				if s0 == nil || bytes.Equal(s0, key) {
					continue
				}
				val = append([]byte(nil), s0...)
			case regs.OpPatternFillROP, regs.OpPatternFillChroma:
				p := c.mem(g.s0.at(i%pat, j%pat, g.bpp), g.bpp)
				if p == nil {
					continue
				}
				if op == regs.OpPatternFillChroma {
					if bytes.Equal(p, key) {
						continue
					}
					val = append([]byte(nil), p...)
					break
				}
				val = make([]byte, g.bpp)
				for k := range val {
					val[k] = rop(code, p[k], d[k])
				}
			case regs.OpMemoryCopyOpacity:
				s0, s1 := c.mem(g.s0.at(i, j, g.bpp), g.bpp), c.mem(g.s1.at(i, j, g.bpp), g.bpp)
				if s0 == nil || s1 == nil {
					continue
				}
				r0, g0, b0 := unpack(g.depth, s0)
				r1, g1, b1 := unpack(g.depth, s1)
				val = make([]byte, g.bpp)
				pack(g.depth, blend(r0, r1, alpha), blend(g0, g1, alpha), blend(b0, b1, alpha), val)
			case regs.OpSolidFill:
				val = fg
			default:
				continue
			}
			out = append(out, px{doff, val})
		}
	}
	for _, p := range out {
		copy(c.mem(p.off, g.bpp), p.val)
	}
	c.busy = c.opts.BusyReads
}

// mpuStream consumes data-port bytes for an MPU-sourced block transfer.
type mpuStream struct {
	op, code byte
	g        geometry
	key      []byte
	fg, bg   []byte
	rowBytes int
	total    int
	n        int
	pix      []byte
}

func newMPUStream(c *Controller, op, code byte, g geometry) *mpuStream {
	m := &mpuStream{
		op:   op,
		code: code,
		g:    g,
		key:  c.colorReg(regs.BGCR, g.depth),
		fg:   c.colorReg(regs.FGCR, g.depth),
		bg:   c.colorReg(regs.BGCR, g.depth),
	}
	switch op {
	case regs.OpColorExpansion, regs.OpColorExpansionChroma:
		m.rowBytes = (g.w + 7) / 8
		m.total = m.rowBytes * g.h
	default:
		m.total = g.w * g.h * g.bpp
	}
	return m
}

func (m *mpuStream) feed(c *Controller, v byte) {
	g := m.g
	switch m.op {
	case regs.OpColorExpansion, regs.OpColorExpansionChroma:
		row, col := m.n/m.rowBytes, m.n%m.rowBytes
		for bit := range 8 {
			x := col*8 + bit
			if x >= g.w {
				break
			}
			src := m.bg
			if v&(0x80>>bit) != 0 {
				src = m.fg
			} else if m.op == regs.OpColorExpansionChroma {
				continue
			}
			if d := c.mem(g.dt.at(x, row, g.bpp), g.bpp); d != nil {
				copy(d, src)
			}
		}
		m.n++
	default:
		m.pix = append(m.pix, v)
		m.n++
		if len(m.pix) < g.bpp {
			break
		}
		pi := m.n/g.bpp - 1
		x, y := pi%g.w, pi/g.w
		d := c.mem(g.dt.at(x, y, g.bpp), g.bpp)
		if d != nil {
			switch m.op {
			case regs.OpMPUWriteROP:
				if s1 := c.mem(g.s1.at(x, y, g.bpp), g.bpp); s1 != nil {
					for k := range d {
						d[k] = rop(m.code, m.pix[k], s1[k])
					}
				}
			case regs.OpMPUWriteChroma:
				if !bytes.Equal(m.pix, m.key) {
					copy(d, m.pix)
				}
			}
		}
		m.pix = m.pix[:0]
	}
	if m.n >= m.total {
		c.mpu = nil
		c.busy = c.opts.BusyReads
	}
}
