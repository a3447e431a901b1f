// Package draw drives the RA8876 geometric draw engine.
//
// The engine rasterizes lines, triangles, rectangles, rounded rectangles,
// circles and ellipses in the foreground color, outlined or filled. Shapes
// land on the canvas position currently programmed on the Addresser and are
// clipped by the hardware to its active window; wrap a call in
// canvas.Addresser.WithPosition to draw on an offscreen surface.
//
// A Shape is submitted in one call. Submit programs the foreground color
// and the coordinate registers, writes the control register (DCR0 for lines
// and triangles, DCR1 for the rest) last and polls core busy. Coordinates
// and radii must fit the 16-bit registers.
package draw
