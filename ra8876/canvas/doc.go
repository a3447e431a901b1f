// Package canvas translates 2D drawing coordinates into RA8876 SDRAM
// addresses and programs the controller's positioning registers.
//
// # Model
//
// The controller draws into a canvas: a rectangle of Width × Height pixels
// whose first pixel lives at a byte address (the canvas base) in the SDRAM
// arena. Inside the canvas an active window clips memory writes, and a pixel
// cursor selects where the next data-port write lands.
//
// Off-screen surfaces are addressed by line offset: line ln of a canvas with
// the current width and color depth starts at
//
//	addr = ln × width × bytesPerPixel
//
// AddressFromLineOffset is the only place this conversion happens. It fails
// with ErrOutOfRange when ln does not fit in the arena.
//
// # Positioning
//
// Base address, canvas width, window origin, window size and cursor form one
// global register set. Apply programs them in that order. Operations that
// need a temporary position use WithPosition, which restores the previous
// position on every exit path:
//
//	err := a.WithPosition(canvas.Position{...}, func() error {
//	    return bus.WriteStream(b, pixels)
//	})
//
// # Addressing Modes
//
// In Block mode the cursor is an (x, y) pair relative to the canvas base. In
// Linear mode the cursor registers carry a flat byte address and the window
// registers are ignored by the controller. The Addresser computes the flat
// address itself so callers keep working in (x, y, ln).
//
// # Color Modes
//
// Color modes are described by a lookup table of Format values: bits and
// bytes per pixel and the depth code written to the color-depth registers.
// ARGB2222 shares the 8 bpp depth code and ARGB4444 the 16 bpp code.
package canvas
