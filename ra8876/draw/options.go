package draw

import "github.com/joshuapare/ra8876kit/ra8876/poll"

// Options configures an Engine.
type Options struct {
	// Busy bounds the wait for a draw to finish.
	// Default: poll.Busy (1s)
	Busy poll.Budget
}

// DefaultOptions returns the recommended options.
func DefaultOptions() *Options {
	return &Options{Busy: poll.Busy}
}
