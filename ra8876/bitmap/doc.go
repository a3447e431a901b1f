// Package bitmap provides off-screen images in controller SDRAM and blits
// between them.
//
// A Bitmap is a rectangle of pixels in the current canvas color mode. Create
// reserves its memory from the Device allocator; Screen wraps the visible
// canvas. All drawing runs on the block transfer engine, so coordinates
// outside a bitmap are clipped, or skipped entirely when the origin itself
// lies outside.
//
// Sprites draw animation frames from a sheet bitmap onto a background and
// keep a copy of what they covered so Erase can put it back.
package bitmap
