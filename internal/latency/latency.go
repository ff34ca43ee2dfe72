// Package latency simulates the round trip of a remote API in front of
// the in-memory stores. Every service call waits its configured delay on
// an injectable clock before touching data.
package latency

import (
	"context"
	"time"

	"github.com/thenoetrevino/campfire/internal/clock"
)

// Simulator waits a fixed delay per call
type Simulator struct {
	clock clock.Clock
	delay time.Duration
}

// New creates a Simulator. A nil clock means the real clock.
func New(c clock.Clock, delay time.Duration) *Simulator {
	if c == nil {
		c = clock.Real()
	}
	return &Simulator{clock: c, delay: delay}
}

// Delay returns the configured delay
func (s *Simulator) Delay() time.Duration {
	if s == nil {
		return 0
	}
	return s.delay
}

// Wait blocks for the configured delay. It returns ctx.Err() if the
// context ends first, in which case the caller must not touch state.
// A nil Simulator does not wait.
func (s *Simulator) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.delay <= 0 {
		return nil
	}

	select {
	case <-s.clock.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
