package bte

import "github.com/joshuapare/ra8876kit/ra8876/poll"

// Options configures an Engine.
type Options struct {
	// Busy bounds the wait for core busy to clear after a trigger, and
	// before programming when the previous operation is still running.
	// A zero Timeout reports poll.ErrTimeout without reading the status.
	// Default: poll.Busy (1s)
	Busy poll.Budget
}

// DefaultOptions returns the recommended options.
func DefaultOptions() *Options {
	return &Options{Busy: poll.Busy}
}
