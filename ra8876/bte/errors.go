package bte

import "errors"

var (
	// ErrInvalidArgument indicates a degenerate size, bad ROP code, missing
	// source or short host data.
	ErrInvalidArgument = errors.New("bte: invalid argument")

	// ErrBusy indicates the previous operation did not drain in time.
	ErrBusy = errors.New("bte: engine busy")
)
