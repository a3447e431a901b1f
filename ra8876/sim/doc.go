// Package sim is a register-level model of the RA8876 used by tests and the
// ra8876ctl demo command.
//
// A Controller implements bus.Bus and bus.Streamer. It keeps a 256-byte
// register file, the SDRAM arena, a serial flash image and the small amount of
// sequencing state the real chip has:
//
//   - the memory data port (04h) writes and reads pixels at the graphic
//     cursor, wrapping inside the active window in Block mode and walking a
//     flat address in Linear mode; the first read after a cursor move is a
//     dummy
//   - setting the enable bit in BTE_CTRL0 (90h) runs the programmed block
//     transfer; MPU operations consume the following data-port bytes
//   - setting the start bit in DMA_CTRL (B6h) copies from the flash image
//   - INTF (0Ch) is write-1-to-clear and Vsync raises its vsync bit
//
// Completion is modeled by keeping the core-busy status bit set for
// Options.BusyReads status reads after each operation, so callers exercise
// their polling. SetStuckBusy pins the bit to test timeouts.
//
// Pixel math follows the 8, 16 and 24 bpp depth codes. The model does not
// render hardware text; bytes written in text mode are captured for
// inspection instead.
package sim
