// Package poll implements bounded status polling against a monotonic
// deadline. Every wait in the driver goes through Until so a hung controller
// surfaces as ErrTimeout instead of a spin that never returns.
package poll

import (
	"context"
	"errors"
	"time"

	"github.com/joshuapare/ra8876kit/ra8876/bus"
)

// ErrTimeout is returned when the condition did not hold before the deadline.
// It is a soft failure: the hardware may still complete later.
var ErrTimeout = errors.New("poll: timeout")

// Budget bounds a single wait.
type Budget struct {
	// Timeout is the total time allowed. A zero or negative Timeout fails
	// immediately without evaluating the condition.
	Timeout time.Duration

	// Interval is the pause between evaluations. Zero spins.
	Interval time.Duration
}

// Default budgets.
var (
	FIFO  = Budget{Timeout: 10 * time.Millisecond}
	Busy  = Budget{Timeout: time.Second}
	Ready = Budget{Timeout: 100 * time.Millisecond, Interval: time.Millisecond}
	Vsync = Budget{Timeout: 50 * time.Millisecond, Interval: time.Millisecond}
)

// Until evaluates cond until it reports true, it returns an error, the
// context is done, or the budget expires.
func Until(ctx context.Context, b Budget, cond func() (bool, error)) error {
	if b.Timeout <= 0 {
		return ErrTimeout
	}
	deadline := time.Now().Add(b.Timeout)

	var timer *time.Timer
	if b.Interval > 0 {
		timer = time.NewTimer(b.Interval)
		defer timer.Stop()
	}

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := cond()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if timer == nil {
			continue
		}
		timer.Reset(b.Interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return ErrTimeout
}

// StatusClear waits until every bit of mask reads 0 in the status register.
func StatusClear(ctx context.Context, bs bus.Bus, mask byte, b Budget) error {
	return Until(ctx, b, func() (bool, error) {
		s, err := bs.Status()
		if err != nil {
			return false, err
		}
		return s&mask == 0, nil
	})
}

// StatusSet waits until any bit of mask reads 1 in the status register.
func StatusSet(ctx context.Context, bs bus.Bus, mask byte, b Budget) error {
	return Until(ctx, b, func() (bool, error) {
		s, err := bs.Status()
		if err != nil {
			return false, err
		}
		return s&mask != 0, nil
	})
}
