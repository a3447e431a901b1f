package dma

import "errors"

// ErrInvalidArgument indicates a zero-sized picture or byte count.
var ErrInvalidArgument = errors.New("dma: invalid argument")
