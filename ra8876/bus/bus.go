package bus

import (
	"fmt"

	"github.com/joshuapare/ra8876kit/internal/buf"
	"github.com/joshuapare/ra8876kit/internal/regs"
)

// Bus is the register transport.
type Bus interface {
	WriteReg(addr, val byte) error
	ReadReg(addr byte) (byte, error)
	Status() (byte, error)
}

// Streamer is implemented by transports that can stream through the memory
// data port in one transaction.
type Streamer interface {
	WriteData(p []byte) error
	ReadData(p []byte) error
}

// Write16 writes v to the two registers starting at lo.
func Write16(b Bus, lo byte, v uint16) error {
	for i, x := range buf.Split16(v) {
		if err := b.WriteReg(lo+byte(i), x); err != nil {
			return fmt.Errorf("bus: write %02Xh: %w", lo+byte(i), err)
		}
	}
	return nil
}

// Write32 writes v to the four registers starting at lo.
func Write32(b Bus, lo byte, v uint32) error {
	for i, x := range buf.Split32(v) {
		if err := b.WriteReg(lo+byte(i), x); err != nil {
			return fmt.Errorf("bus: write %02Xh: %w", lo+byte(i), err)
		}
	}
	return nil
}

// Read16 reads the two registers starting at lo.
func Read16(b Bus, lo byte) (uint16, error) {
	var raw [2]byte
	for i := range raw {
		v, err := b.ReadReg(lo + byte(i))
		if err != nil {
			return 0, fmt.Errorf("bus: read %02Xh: %w", lo+byte(i), err)
		}
		raw[i] = v
	}
	return buf.U16LE(raw[:]), nil
}

// Read32 reads the four registers starting at lo.
func Read32(b Bus, lo byte) (uint32, error) {
	var raw [4]byte
	for i := range raw {
		v, err := b.ReadReg(lo + byte(i))
		if err != nil {
			return 0, fmt.Errorf("bus: read %02Xh: %w", lo+byte(i), err)
		}
		raw[i] = v
	}
	return buf.U32LE(raw[:]), nil
}

// Modify performs a read-modify-write: bits in clear are reset, then bits in
// set are applied.
func Modify(b Bus, addr, clear, set byte) error {
	v, err := b.ReadReg(addr)
	if err != nil {
		return fmt.Errorf("bus: read %02Xh: %w", addr, err)
	}
	v = (v &^ clear) | set
	if err := b.WriteReg(addr, v); err != nil {
		return fmt.Errorf("bus: write %02Xh: %w", addr, err)
	}
	return nil
}

// WriteStream pushes p through the memory data port.
func WriteStream(b Bus, p []byte) error {
	if s, ok := b.(Streamer); ok {
		return s.WriteData(p)
	}
	for _, v := range p {
		if err := b.WriteReg(regs.MRWDP, v); err != nil {
			return fmt.Errorf("bus: data write: %w", err)
		}
	}
	return nil
}

// ReadStream fills p from the memory data port.
func ReadStream(b Bus, p []byte) error {
	if s, ok := b.(Streamer); ok {
		return s.ReadData(p)
	}
	for i := range p {
		v, err := b.ReadReg(regs.MRWDP)
		if err != nil {
			return fmt.Errorf("bus: data read: %w", err)
		}
		p[i] = v
	}
	return nil
}
