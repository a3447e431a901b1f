package bitmap

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive size or bad frame index.
	ErrInvalidArgument = errors.New("bitmap: invalid argument")

	// ErrDestroyed indicates use of a bitmap after Destroy.
	ErrDestroyed = errors.New("bitmap: destroyed")
)
