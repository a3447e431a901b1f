package spidev

import "errors"

var (
	// ErrUnsupported is returned by Open on platforms without spidev.
	ErrUnsupported = errors.New("spidev: unsupported platform")

	// ErrInvalidArgument indicates unusable options.
	ErrInvalidArgument = errors.New("spidev: invalid argument")

	// ErrClosed is returned by every call after Close.
	ErrClosed = errors.New("spidev: closed")
)
