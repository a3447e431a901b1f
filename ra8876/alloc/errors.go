package alloc

import "errors"

var (
	// ErrInvalidArgument indicates a zero-size request or an unusable configuration.
	ErrInvalidArgument = errors.New("alloc: invalid argument")

	// ErrOutOfMemory indicates no free run long enough was found.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrOutOfBounds indicates an offset outside the arena.
	ErrOutOfBounds = errors.New("alloc: offset out of bounds")
)
