// Package mmfile maps serial flash and SDRAM image files into memory
// read-only, falling back to a plain read where mmap is unavailable.
package mmfile

import "errors"

// MaxImage bounds the images Map accepts: the largest serial flash the
// controller addresses in 4-byte mode.
const MaxImage = 1 << 32

// ErrTooLarge is returned for images beyond MaxImage.
var ErrTooLarge = errors.New("mmfile: image too large")

func noop() error { return nil }
