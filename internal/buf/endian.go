// Package buf contains little-endian helpers for multi-byte register runs and
// bounds-checked slicing of memory images.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Split16 returns the register bytes of v, low byte first.
func Split16(v uint16) [2]byte {
	var out [2]byte
	binary.LittleEndian.PutUint16(out[:], v)
	return out
}

// Split32 returns the register bytes of v, low byte first.
func Split32(v uint32) [4]byte {
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], v)
	return out
}
