package text

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/ra8876kit/internal/logger"
	"github.com/joshuapare/ra8876kit/internal/regs"
	"github.com/joshuapare/ra8876kit/ra8876"
	"github.com/joshuapare/ra8876kit/ra8876/bus"
	"github.com/joshuapare/ra8876kit/ra8876/canvas"
	"github.com/joshuapare/ra8876kit/ra8876/poll"
)

// Charset selects the CGROM code page. The code pages share 20h–7Fh and
// differ from A0h up.
type Charset uint8

const (
	Latin1   Charset = iota // ISO/IEC 8859-1
	Latin2                  // ISO/IEC 8859-2
	Latin4                  // ISO/IEC 8859-4
	Cyrillic                // ISO/IEC 8859-5
)

func (c Charset) charmap() (*charmap.Charmap, bool) {
	switch c {
	case Latin1:
		return charmap.ISO8859_1, true
	case Latin2:
		return charmap.ISO8859_2, true
	case Latin4:
		return charmap.ISO8859_4, true
	case Cyrillic:
		return charmap.ISO8859_5, true
	}
	return nil, false
}

func (c Charset) String() string {
	if cm, ok := c.charmap(); ok {
		return cm.String()
	}
	return fmt.Sprintf("Charset(%d)", uint8(c))
}

// Height selects the CGROM cell height. Cells are half as wide as they are
// tall.
type Height uint8

const (
	Height16 Height = iota
	Height24
	Height32
)

// Pixels returns the cell height in pixels.
func (h Height) Pixels() int {
	return 16 + 8*int(h)
}

// Substitute is the byte written for runes the selected code page lacks.
const Substitute byte = 0x1A

// HW prints with the embedded character generator. The zero value prints
// 8×16 Latin-1 text, unscaled, on a solid black background in black; set at
// least Foreground.
type HW struct {
	Height  Height
	Charset Charset

	// ScaleX and ScaleY enlarge each cell 1–4 times. Zero means 1.
	ScaleX, ScaleY int

	// Transparent leaves the canvas visible behind each character instead
	// of filling the cell with Background.
	Transparent bool

	Foreground canvas.Color
	Background canvas.Color

	// LineGap is the extra pixel rows between lines when the cursor wraps
	// at the active window edge.
	LineGap uint8

	// Spacing is the extra pixel columns between characters.
	Spacing uint8
}

// Encode converts s into the selected code page. Runes outside it become
// Substitute.
func (h HW) Encode(s string) ([]byte, error) {
	cm, ok := h.Charset.charmap()
	if !ok {
		return nil, fmt.Errorf("%w: charset %d", ErrInvalidArgument, h.Charset)
	}
	out, err := encoding.ReplaceUnsupported(cm.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("text: encode %s: %w", h.Charset, err)
	}
	return out, nil
}

func (h HW) ccr0() byte {
	// source 0 is the internal CGROM
	return byte(h.Height)<<4 | byte(h.Charset)
}

func (h HW) ccr1() byte {
	v := byte(0x80) // full character alignment
	if h.Transparent {
		v |= 0x40
	}
	return v | byte(h.ScaleX-1)<<2 | byte(h.ScaleY-1)
}

func (h HW) validate() (HW, error) {
	if h.ScaleX == 0 {
		h.ScaleX = 1
	}
	if h.ScaleY == 0 {
		h.ScaleY = 1
	}
	if h.ScaleX < 1 || h.ScaleX > 4 || h.ScaleY < 1 || h.ScaleY > 4 {
		return h, fmt.Errorf("%w: scale %dx%d", ErrInvalidArgument, h.ScaleX, h.ScaleY)
	}
	if h.Height > Height32 {
		return h, fmt.Errorf("%w: height code %d", ErrInvalidArgument, h.Height)
	}
	return h, nil
}

// PutString prints s with its first cell's upper-left corner at (x, y) on
// the canvas starting at line ln. The canvas position and graphic mode are
// restored before it returns.
func (h HW) PutString(ctx context.Context, dev *ra8876.Device, x, y, ln int, s string) error {
	h, err := h.validate()
	if err != nil {
		return err
	}
	if x < 0 || y < 0 || x > 0xFFFF || y > 0xFFFF {
		return fmt.Errorf("%w: cursor (%d,%d)", ErrInvalidArgument, x, y)
	}
	data, err := h.Encode(s)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	a := dev.Canvas()
	base, err := a.AddressFromLineOffset(ln)
	if err != nil {
		return err
	}
	b := dev.Bus()
	if err := h.program(a, b); err != nil {
		return err
	}

	p := a.Position()
	p.Base = base
	return a.WithPosition(p, func() (err error) {
		if err := bus.Write16(b, regs.FCURX0, uint16(x)); err != nil {
			return err
		}
		if err := bus.Write16(b, regs.FCURY0, uint16(y)); err != nil {
			return err
		}
		if err := dev.TextMode(); err != nil {
			return err
		}
		defer func() {
			if gerr := dev.GraphicMode(); gerr != nil {
				err = errors.Join(err, fmt.Errorf("text: graphic mode: %w", gerr))
			}
		}()
		if err := bus.WriteStream(b, data); err != nil {
			return err
		}
		if err := poll.StatusClear(ctx, b, regs.StatusCoreBusy, dev.Options().Busy); err != nil {
			logger.Warn("text: character engine still busy", "bytes", len(data), "error", err)
			return fmt.Errorf("text: wait: %w", err)
		}
		return nil
	})
}

func (h HW) program(a *canvas.Addresser, b bus.Bus) error {
	writes := [...]struct{ addr, val byte }{
		{regs.CCR0, h.ccr0()},
		{regs.CCR1, h.ccr1()},
		{regs.FLDR, h.LineGap},
		{regs.F2FSSR, h.Spacing},
	}
	for _, w := range writes {
		if err := b.WriteReg(w.addr, w.val); err != nil {
			return err
		}
	}
	if err := a.SetForeground(h.Foreground); err != nil {
		return err
	}
	if h.Transparent {
		return nil
	}
	return a.SetBackground(h.Background)
}
