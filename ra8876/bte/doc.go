// Package bte drives the RA8876 block transfer engine.
//
// # Overview
//
// A block transfer reads one or two rectangular sources (SDRAM regions or a
// host data stream), combines them and writes a destination rectangle. The
// engine is programmed with a Descriptor and moves through
//
//	Idle → Programmed → Triggered → Busy → Idle
//
// Submit writes source, destination, size, operation and color registers,
// sets the enable bit last, streams host data for MPU operations and polls
// the core-busy status bit with the configured budget. A descriptor is never
// reprogrammed while the engine is Busy: Submit first waits for the previous
// operation to drain.
//
// # Clipping
//
// Coordinates outside a surface are not an error. When any origin lies beyond
// its surface the call does nothing and returns Result{Skipped: true}. The
// size is otherwise truncated to what fits in the destination:
//
//	width  = min(size.Width,  dst.Stride − dst.X)
//	height = min(size.Height, dst.Height − dst.Y)
//
// A requested width or height ≤ 0 is ErrInvalidArgument.
//
// # Operations
//
//   - CopyWithROP: dst = ROP(S0, S1); S1 defaults to the destination
//   - CopyWithChromaKey: copy S0, skipping pixels equal to the key
//   - CopyWithOpacity: dst = S0 × (1 − α/32) + S1 × α/32, α clamped to 32
//   - SolidFill: dst = color
//   - PatternFill: tile an 8×8 or 16×16 pattern, optionally keyed
//   - MPUWriteWithROP, MPUWriteWithChromaKey: host pixels as S0
//   - MPUWriteColorExpansion: 1 bpp host bitmap expanded to fg / bg
package bte
