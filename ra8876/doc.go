// Package ra8876 ties the RA8876 graphics substrate together behind a Device.
//
// A Device owns one register transport and builds the pieces that share it:
//
//   - canvas.Addresser: color depth, canvas geometry and the positioning
//     registers
//   - bte.Engine: block transfers on the canvas
//   - dma.Loader: serial flash to SDRAM transfers
//   - alloc.Allocator: off-screen SDRAM, created on the first Allocate
//
// Typical use:
//
//	dev, err := ra8876.New(spi, nil)
//	if err != nil {
//	    return err
//	}
//	if err := dev.WaitReady(ctx); err != nil {
//	    return err
//	}
//	if err := dev.SetCanvas(canvas.Descriptor{Width: 800, Height: 480, Mode: canvas.RGB565}); err != nil {
//	    return err
//	}
//	off, err := dev.Allocate(64 * 64 * 2)
//
// The allocator is sized from the canvas in effect at the first Allocate.
// Changing width or color depth afterwards leaves earlier offsets pointing at
// the old geometry.
//
// # Interrupts
//
// HandleIRQ only records that the interrupt line fired and is safe to call
// from another goroutine. QueryIRQ, ResetIRQ and WaitVsync consume that
// record on the caller's goroutine. A second vsync before the first is
// consumed is lost.
//
// A Device is otherwise not safe for concurrent use.
package ra8876
