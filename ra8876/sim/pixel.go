package sim

import "github.com/joshuapare/ra8876kit/internal/regs"

func bppOf(depth byte) int {
	switch depth {
	case regs.Depth8:
		return 1
	case regs.Depth24:
		return 3
	default:
		return 2
	}
}

// pack stores r, g, b in the layout of depth.
func pack(depth byte, r, g, b uint8, dst []byte) {
	switch depth {
	case regs.Depth8:
		dst[0] = r&0xE0 | (g&0xE0)>>3 | (b&0xC0)>>6
	case regs.Depth24:
		dst[0], dst[1], dst[2] = b, g, r
	default:
		dst[0] = (g&0x1C)<<3 | (b&0xF8)>>3
		dst[1] = r&0xF8 | (g&0xE0)>>5
	}
}

// unpack is the inverse of pack.
func unpack(depth byte, p []byte) (r, g, b uint8) {
	switch depth {
	case regs.Depth8:
		return p[0] & 0xE0, (p[0] & 0x1C) << 3, (p[0] & 0x03) << 6
	case regs.Depth24:
		return p[2], p[1], p[0]
	default:
		return p[1] & 0xF8, (p[1]&0x07)<<5 | (p[0]&0xE0)>>3, (p[0] & 0x1F) << 3
	}
}

func blend(a, b uint8, alpha int) uint8 {
	return uint8((int(a)*(32-alpha) + int(b)*alpha) / 32)
}

// rop applies one of the 16 raster operations bitwise.
func rop(code byte, s0, s1 byte) byte {
	switch code & 0x0F {
	case 0:
		return 0
	case 1:
		return ^(s0 | s1)
	case 2:
		return ^s0 & s1
	case 3:
		return ^s0
	case 4:
		return s0 &^ s1
	case 5:
		return ^s1
	case 6:
		return s0 ^ s1
	case 7:
		return ^(s0 & s1)
	case 8:
		return s0 & s1
	case 9:
		return ^(s0 ^ s1)
	case 10:
		return s1
	case 11:
		return ^s0 | s1
	case 12:
		return s0
	case 13:
		return s0 | ^s1
	case 14:
		return s0 | s1
	default:
		return 0xFF
	}
}
