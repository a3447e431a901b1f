// Package text draws strings on an RA8876 canvas.
//
// Two renderers are provided. HW drives the controller's embedded character
// generator: the string is encoded into one of the ISO-8859 code pages the
// CGROM carries and streamed through the data port in text mode. Glyphs
// rasterises a bitmap font on the host and hands each string to the block
// transfer engine as a single color expansion, which works on any surface
// the engine can address, including off-screen bitmaps.
//
// Neither renderer wraps lines. The character generator follows the active
// window; Glyphs clips at the destination edge like any other transfer.
package text
