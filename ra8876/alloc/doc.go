// Package alloc provides block allocation over the controller's external
// SDRAM arena.
//
// # Overview
//
// The arena is a flat byte range [0, MemSize) that the host can only reach
// through register writes, so nothing is stored in the arena itself. The
// bookkeeping is a host-side table with one entry per block:
//
//	entry == 0  block is free
//	entry == n  block belongs to a live run of n blocks
//
// An allocation of n blocks starting at block i stamps n into entries
// i..i+n-1. Free takes the byte offset returned by Allocate, looks up n at
// that block and clears n entries. Freeing an interior offset of a run is not
// detected.
//
// # Block Size
//
// Blocks are sized so that a block is a whole number of canvas lines:
//
//	BlockSize = canvasWidth × linesPerBlock × bytesPerPixel
//
// The table is therefore tied to the canvas geometry it was created for.
// Changing color depth afterwards makes earlier offsets meaningless.
//
// # Placement Policies
//
// Two first-fit scans are available:
//
//   - Forward: lowest index >= StartBlock with n consecutive free entries.
//   - Backward: highest index whose run of n entries fits, scanning down to
//     StartBlock. Keeps small objects at the top of the arena.
//
// PolicyBySize selects Forward for requests larger than LargeThreshold and
// Backward otherwise. With the default threshold of 0 every request takes the
// forward path.
//
// StartBlock reserves the blocks below it, typically the visible frame buffer.
//
// # Usage Example
//
//	a, err := alloc.New(alloc.Config{
//	    MemSize:    32 << 20,
//	    BlockSize:  800 * 4 * 2,
//	    StartBlock: 150, // 800x600 RGB565 screen
//	})
//	if err != nil {
//	    return err
//	}
//	off, err := a.Allocate(64 * 64 * 2)
//	if err != nil {
//	    return err
//	}
//	defer a.Free(off)
package alloc
