package canvas

import "github.com/joshuapare/ra8876kit/internal/regs"

// ColorMode selects a pixel format.
type ColorMode uint8

const (
	RGB332 ColorMode = iota + 1
	RGB565
	RGB888
	ARGB2222
	ARGB4444
)

// Format describes how a ColorMode is stored.
type Format struct {
	Name          string
	BitsPerPixel  int  // significant bits
	BytesPerPixel int  // storage per pixel
	DepthCode     byte // value for the color-depth register fields

	encode func(c Color, dst []byte)
	decode func(p []byte) Color
}

var formats = map[ColorMode]Format{
	RGB332: {
		Name: "RGB332", BitsPerPixel: 8, BytesPerPixel: 1, DepthCode: regs.Depth8,
		encode: func(c Color, dst []byte) {
			dst[0] = c.R&0xE0 | (c.G&0xE0)>>3 | (c.B&0xC0)>>6
		},
		decode: func(p []byte) Color {
			return Color{R: p[0] & 0xE0, G: (p[0] & 0x1C) << 3, B: (p[0] & 0x03) << 6, A: 0xFF}
		},
	},
	RGB565: {
		Name: "RGB565", BitsPerPixel: 16, BytesPerPixel: 2, DepthCode: regs.Depth16,
		encode: func(c Color, dst []byte) {
			dst[0] = (c.G&0x1C)<<3 | (c.B&0xF8)>>3
			dst[1] = c.R&0xF8 | (c.G&0xE0)>>5
		},
		decode: func(p []byte) Color {
			return Color{
				R: p[1] & 0xF8,
				G: (p[1]&0x07)<<5 | (p[0]&0xE0)>>3,
				B: (p[0] & 0x1F) << 3,
				A: 0xFF,
			}
		},
	},
	RGB888: {
		Name: "RGB888", BitsPerPixel: 24, BytesPerPixel: 3, DepthCode: regs.Depth24,
		encode: func(c Color, dst []byte) {
			dst[0], dst[1], dst[2] = c.B, c.G, c.R
		},
		decode: func(p []byte) Color {
			return Color{R: p[2], G: p[1], B: p[0], A: 0xFF}
		},
	},
	ARGB2222: {
		Name: "ARGB2222", BitsPerPixel: 8, BytesPerPixel: 1, DepthCode: regs.Depth8,
		encode: func(c Color, dst []byte) {
			dst[0] = c.A&0xC0 | (c.R&0xC0)>>2 | (c.G&0xC0)>>4 | (c.B&0xC0)>>6
		},
		decode: func(p []byte) Color {
			return Color{A: p[0] & 0xC0, R: (p[0] & 0x30) << 2, G: (p[0] & 0x0C) << 4, B: (p[0] & 0x03) << 6}
		},
	},
	ARGB4444: {
		Name: "ARGB4444", BitsPerPixel: 16, BytesPerPixel: 2, DepthCode: regs.Depth16,
		encode: func(c Color, dst []byte) {
			dst[0] = c.G&0xF0 | c.B>>4
			dst[1] = c.A&0xF0 | c.R>>4
		},
		decode: func(p []byte) Color {
			return Color{A: p[1] & 0xF0, R: p[1] << 4, G: p[0] & 0xF0, B: p[0] << 4}
		},
	},
}

// Format returns the storage description of m.
func (m ColorMode) Format() (Format, bool) {
	f, ok := formats[m]
	return f, ok
}

// BytesPerPixel returns the storage size of m, or 0 for an unknown mode.
func (m ColorMode) BytesPerPixel() int {
	return formats[m].BytesPerPixel
}

func (m ColorMode) String() string {
	if f, ok := formats[m]; ok {
		return f.Name
	}
	return "unknown"
}

// Color is an 8-bit-per-channel color. Formats keep the most significant
// bits of each channel. A is only stored by the ARGB modes.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black   = Color{A: 0xFF}
	White   = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Red     = Color{R: 0xFF, A: 0xFF}
	Green   = Color{G: 0xFF, A: 0xFF}
	Blue    = Color{B: 0xFF, A: 0xFF}
	Yellow  = Color{R: 0xFF, G: 0xFF, A: 0xFF}
	Cyan    = Color{G: 0xFF, B: 0xFF, A: 0xFF}
	Magenta = Color{R: 0xFF, B: 0xFF, A: 0xFF}
)

// Encode returns the data-port bytes of c in mode m. Unknown modes yield nil.
func (c Color) Encode(m ColorMode) []byte {
	f, ok := formats[m]
	if !ok {
		return nil
	}
	out := make([]byte, f.BytesPerPixel)
	f.encode(c, out)
	return out
}

// Decode parses one pixel stored in mode m. p must hold at least
// BytesPerPixel bytes.
func Decode(m ColorMode, p []byte) Color {
	f, ok := formats[m]
	if !ok || len(p) < f.BytesPerPixel {
		return Color{}
	}
	return f.decode(p)
}

// Register returns the values for the R, G, B color registers (foreground,
// background, key) masked to the precision of m.
func (c Color) Register(m ColorMode) [3]byte {
	switch formats[m].DepthCode {
	case regs.Depth8:
		return [3]byte{c.R & 0xE0, c.G & 0xE0, c.B & 0xC0}
	case regs.Depth24:
		return [3]byte{c.R, c.G, c.B}
	default:
		return [3]byte{c.R & 0xF8, c.G & 0xFC, c.B & 0xF8}
	}
}

// Fill returns n pixels of c encoded in mode m.
func (c Color) Fill(m ColorMode, n int) []byte {
	px := c.Encode(m)
	out := make([]byte, 0, n*len(px))
	for range n {
		out = append(out, px...)
	}
	return out
}
