package text

import (
	"context"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/joshuapare/ra8876kit/ra8876/bte"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
)

// Fallback is drawn for runes the face does not cover.
const Fallback = '?'

// Glyphs renders a fixed-pitch bitmap face through the block transfer
// engine.
type Glyphs struct {
	face *basicfont.Face
}

// NewGlyphs returns a renderer for face. A nil face uses basicfont.Face7x13.
func NewGlyphs(face *basicfont.Face) *Glyphs {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Glyphs{face: face}
}

// Measure returns the pixel size of s on one line.
func (g *Glyphs) Measure(s string) bte.Size {
	n := 0
	for range s {
		n++
	}
	return bte.Size{Width: n * g.face.Advance, Height: g.face.Ascent + g.face.Descent}
}

// Rasterize renders s as a 1 bpp MSB-first bitmap, one row of
// (Width+7)/8 bytes per pixel row.
func (g *Glyphs) Rasterize(s string) ([]byte, bte.Size) {
	size := g.Measure(s)
	row := (size.Width + 7) / 8
	out := make([]byte, row*size.Height)

	x := 0
	for _, r := range s {
		g.glyph(out, row, x, r)
		x += g.face.Advance
	}
	return out, size
}

func (g *Glyphs) glyph(out []byte, row, x int, r rune) {
	dot := fixed.P(x, g.face.Ascent)
	dr, mask, maskp, _, ok := g.face.Glyph(dot, r)
	if !ok {
		dr, mask, maskp, _, ok = g.face.Glyph(dot, Fallback)
		if !ok {
			return
		}
	}
	for py := dr.Min.Y; py < dr.Max.Y; py++ {
		for px := dr.Min.X; px < dr.Max.X; px++ {
			_, _, _, a := mask.At(maskp.X+px-dr.Min.X, maskp.Y+py-dr.Min.Y).RGBA()
			if a < 0x8000 || px < 0 || py < 0 || px >= row*8 {
				continue
			}
			i := py*row + px/8
			if i >= len(out) {
				continue
			}
			out[i] |= 0x80 >> (px % 8)
		}
	}
}

// DrawString draws s with its upper-left corner at dst and returns the
// horizontal advance. Set pixels take fg; the rest take bg, or keep the
// destination when transparent is true.
func (g *Glyphs) DrawString(ctx context.Context, eng *bte.Engine, dst bte.Region, s string, fg, bg canvas.Color, transparent bool) (int, error) {
	data, size := g.Rasterize(s)
	if size.Width == 0 {
		return 0, nil
	}
	if _, err := eng.MPUWriteColorExpansion(ctx, dst, size, fg, bg, transparent, data); err != nil {
		return 0, err
	}
	return size.Width, nil
}
