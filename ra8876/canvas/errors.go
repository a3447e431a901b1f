package canvas

import "errors"

var (
	// ErrInvalidArgument indicates an unusable canvas descriptor or window.
	ErrInvalidArgument = errors.New("canvas: invalid argument")

	// ErrOutOfRange indicates a line offset or address beyond the arena.
	ErrOutOfRange = errors.New("canvas: out of range")

	// ErrNoCanvas indicates an operation issued before SetCanvas.
	ErrNoCanvas = errors.New("canvas: no canvas configured")
)
