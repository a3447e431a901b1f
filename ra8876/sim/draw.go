package sim

import "github.com/joshuapare/ra8876kit/internal/regs"

// plotter writes the foreground color onto the current canvas, clipped to
// the active window.
type plotter struct {
	c          *Controller
	base       uint32
	width, bpp int
	wx, wy     int
	ww, wh     int
	fg         []byte
}

func (c *Controller) plotter() plotter {
	depth := c.depth()
	return plotter{
		c:     c,
		base:  c.u32(regs.CVSSA0),
		width: c.u16(regs.CVSIMWTH0),
		bpp:   bppOf(depth),
		wx:    c.u16(regs.AWULX0),
		wy:    c.u16(regs.AWULY0),
		ww:    c.u16(regs.AWWTH0),
		wh:    c.u16(regs.AWHT0),
		fg:    c.colorReg(regs.FGCR, depth),
	}
}

func (p plotter) plot(x, y int) {
	if x < p.wx || y < p.wy || x >= p.wx+p.ww || y >= p.wy+p.wh {
		return
	}
	off := uint64(p.base) + uint64((y*p.width+x)*p.bpp)
	if off > uint64(^uint32(0)) {
		return
	}
	if d := p.c.mem(uint32(off), p.bpp); d != nil {
		copy(d, p.fg)
	}
}

func (p plotter) line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		p.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// region rasterizes the set described by inside over the inclusive box.
// Outlines keep the inside pixels with an outside 4-neighbor.
func (p plotter) region(x0, y0, x1, y1 int, fill bool, inside func(x, y int) bool) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inside(x, y) {
				continue
			}
			if fill || !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1) {
				p.plot(x, y)
			}
		}
	}
}

// runDraw executes the shape started through DCR0 or DCR1.
func (c *Controller) runDraw(reg, ctrl byte) {
	c.drawOps++
	p := c.plotter()
	x0, y0 := c.u16(regs.DLHSR0), c.u16(regs.DLVSR0)
	x1, y1 := c.u16(regs.DLHER0), c.u16(regs.DLVER0)

	if reg == regs.DCR0 {
		if ctrl&regs.DCR0Triangle == 0 {
			p.line(x0, y0, x1, y1)
		} else {
			x2, y2 := c.u16(regs.DTPH0), c.u16(regs.DTPV0)
			if ctrl&regs.DCR0Fill != 0 {
				p.region(min(x0, x1, x2), min(y0, y1, y2), max(x0, x1, x2), max(y0, y1, y2), true,
					inTriangle(x0, y0, x1, y1, x2, y2))
			} else {
				p.line(x0, y0, x1, y1)
				p.line(x1, y1, x2, y2)
				p.line(x2, y2, x0, y0)
			}
		}
		c.busy = c.opts.BusyReads
		return
	}

	fill := ctrl&regs.DrawFill != 0
	rx, ry := c.u16(regs.ELLA0), c.u16(regs.ELLB0)
	lx, hx, ly, hy := min(x0, x1), max(x0, x1), min(y0, y1), max(y0, y1)
	switch ctrl & regs.DCR1ShapeMask {
	case regs.DCR1Rect:
		p.region(lx, ly, hx, hy, fill, func(x, y int) bool {
			return x >= lx && x <= hx && y >= ly && y <= hy
		})
	case regs.DCR1RoundRect:
		p.region(lx, ly, hx, hy, fill, func(x, y int) bool {
			if x < lx || x > hx || y < ly || y > hy {
				return false
			}
			// distance to the nearest corner center
			cx, cy := clamp(x, lx+rx, hx-rx), clamp(y, ly+ry, hy-ry)
			return inEllipse(x-cx, y-cy, rx, ry)
		})
	case regs.DCR1Ellipse:
		cx, cy := c.u16(regs.DEHR0), c.u16(regs.DEVR0)
		p.region(cx-rx, cy-ry, cx+rx, cy+ry, fill, func(x, y int) bool {
			return inEllipse(x-cx, y-cy, rx, ry)
		})
	}
	c.busy = c.opts.BusyReads
}

func inEllipse(dx, dy, a, b int) bool {
	if a == 0 || b == 0 {
		return false
	}
	aa, bb := int64(a)*int64(a), int64(b)*int64(b)
	return int64(dx)*int64(dx)*bb+int64(dy)*int64(dy)*aa <= aa*bb
}

func inTriangle(x0, y0, x1, y1, x2, y2 int) func(x, y int) bool {
	edge := func(ax, ay, bx, by, x, y int) int64 {
		return int64(bx-ax)*int64(y-ay) - int64(by-ay)*int64(x-ax)
	}
	return func(x, y int) bool {
		d0 := edge(x0, y0, x1, y1, x, y)
		d1 := edge(x1, y1, x2, y2, x, y)
		d2 := edge(x2, y2, x0, y0, x, y)
		neg := d0 < 0 || d1 < 0 || d2 < 0
		pos := d0 > 0 || d1 > 0 || d2 > 0
		return !(neg && pos)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
