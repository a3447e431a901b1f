// Package bus defines the register transport the RA8876 driver is written
// against and the helpers that spread wide values over consecutive registers.
//
// The controller exposes everything through two primitives: select a register
// then write or read its data byte. A separate status read returns the FIFO,
// core-busy and SDRAM-ready bits without selecting a register. The concrete
// transport (SPI, 8080 parallel, a simulator) is outside this package:
//
//	type Bus interface {
//	    WriteReg(addr, val byte) error
//	    ReadReg(addr byte) (byte, error)
//	    Status() (byte, error)
//	}
//
// Transports that can move bulk data through the memory data port (register
// 04h) without re-selecting it for every byte may also implement Streamer.
// WriteStream and ReadStream use it when present and fall back to byte-wise
// register access otherwise.
//
// Multi-byte registers on the RA8876 are laid out low byte first at ascending
// addresses; Write16 and Write32 follow that layout.
package bus
