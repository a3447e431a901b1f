package bitmap

import (
	"context"
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/bte"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/dma"
	"github.com/joshuapare/ra8876kit/ra8876/draw"
)

// MaskColor marks transparent pixels for MaskedBlit and sprites.
var MaskColor = canvas.Magenta

// Bitmap is a w×h image in SDRAM.
type Bitmap struct {
	dev  *ra8876.Device
	addr uint32
	w, h int

	owned     bool // memory came from the allocator
	destroyed bool
}

// Create allocates a w×h bitmap in the current color mode.
func Create(dev *ra8876.Device, w, h int) (*Bitmap, error) {
	if w <= 0 || h <= 0 || !regs.Fits16(w, h) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidArgument, w, h)
	}
	bpp := dev.Canvas().Format().BytesPerPixel
	if bpp == 0 {
		return nil, ra8876.ErrNoCanvas
	}
	size := uint64(w) * uint64(h) * uint64(bpp)
	if size > uint64(dev.Canvas().MemSize()) {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, arena is %d",
			ra8876.ErrOutOfMemory, w, h, size, dev.Canvas().MemSize())
	}
	addr, err := dev.Allocate(uint32(size))
	if err != nil {
		return nil, err
	}
	return &Bitmap{dev: dev, addr: addr, w: w, h: h, owned: true}, nil
}

// Screen returns the visible canvas as a bitmap. Destroy on it is a no-op.
func Screen(dev *ra8876.Device) *Bitmap {
	d := dev.Canvas().Descriptor()
	return &Bitmap{dev: dev, addr: d.Base, w: d.Width, h: d.Height}
}

// LoadFlash creates a w×h bitmap and fills it from serial flash at src.
func LoadFlash(ctx context.Context, dev *ra8876.Device, w, h int, src uint32) (*Bitmap, error) {
	b, err := Create(dev, w, h)
	if err != nil {
		return nil, err
	}
	t, err := dma.LinearFromPicture(src, b.addr, w, h, dev.Canvas().Descriptor().Mode)
	if err == nil {
		err = dev.DMA().Linear(ctx, t)
	}
	if err != nil {
		_ = b.Destroy()
		return nil, err
	}
	return b, nil
}

// Destroy returns the bitmap's memory to the allocator.
func (b *Bitmap) Destroy() error {
	if b.destroyed {
		return ErrDestroyed
	}
	b.destroyed = true
	if !b.owned {
		return nil
	}
	return b.dev.Free(b.addr)
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.w }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.h }

// Addr returns the SDRAM byte address of pixel (0, 0).
func (b *Bitmap) Addr() uint32 { return b.addr }

// Region returns the bitmap as a block transfer surface with origin (x, y).
func (b *Bitmap) Region(x, y int) bte.Region {
	return bte.Region{Addr: b.addr, Stride: b.w, Height: b.h, X: x, Y: y}
}

// ClearToColor fills the whole bitmap with c.
func (b *Bitmap) ClearToColor(ctx context.Context, c canvas.Color) error {
	return b.fill(ctx, 0, 0, b.w, b.h, c)
}

// RectFill fills the rectangle with corners (x1, y1) and (x2, y2), both
// inclusive, in either order.
func (b *Bitmap) RectFill(ctx context.Context, x1, y1, x2, y2 int, c canvas.Color) error {
	x1, x2 = min(x1, x2), max(x1, x2)
	y1, y2 = min(y1, y2), max(y1, y2)
	return b.fill(ctx, x1, y1, x2-x1+1, y2-y1+1, c)
}

// Rect draws a one pixel outline with inclusive corners.
func (b *Bitmap) Rect(ctx context.Context, x1, y1, x2, y2 int, c canvas.Color) error {
	return b.Draw(ctx, draw.Shape{Kind: draw.KindRect, P0: draw.Pt(x1, y1), P1: draw.Pt(x2, y2), Color: c})
}

// Line draws a line with both ends included.
func (b *Bitmap) Line(ctx context.Context, x1, y1, x2, y2 int, c canvas.Color) error {
	return b.Draw(ctx, draw.Shape{Kind: draw.KindLine, P0: draw.Pt(x1, y1), P1: draw.Pt(x2, y2), Color: c})
}

// Circle outlines a circle of radius r around (x, y).
func (b *Bitmap) Circle(ctx context.Context, x, y, r int, c canvas.Color) error {
	return b.Draw(ctx, draw.Shape{Kind: draw.KindEllipse, P0: draw.Pt(x, y), RX: r, RY: r, Color: c})
}

// CircleFill fills a circle of radius r around (x, y).
func (b *Bitmap) CircleFill(ctx context.Context, x, y, r int, c canvas.Color) error {
	return b.Draw(ctx, draw.Shape{Kind: draw.KindEllipse, P0: draw.Pt(x, y), RX: r, RY: r, Fill: true, Color: c})
}

// Draw renders s with the draw engine in the bitmap's coordinates, clipped
// to the bitmap.
func (b *Bitmap) Draw(ctx context.Context, s draw.Shape) error {
	if b.destroyed {
		return ErrDestroyed
	}
	p := canvas.Position{
		Base:   b.addr,
		Width:  b.w,
		Window: canvas.Window{Width: b.w, Height: b.h},
	}
	return b.dev.Canvas().WithPosition(p, func() error {
		return b.dev.Draw().Submit(ctx, s)
	})
}

func (b *Bitmap) fill(ctx context.Context, x, y, w, h int, c canvas.Color) error {
	if b.destroyed {
		return ErrDestroyed
	}
	_, err := b.dev.BTE().SolidFill(ctx, b.Region(x, y), bte.Size{Width: w, Height: h}, c)
	return err
}
