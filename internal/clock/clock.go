// Package clock provides an injectable time source so simulated latency
// and timestamps can be driven deterministically in tests.
//
// Production code uses Real(). Tests use Fake(t0), which stands still
// until Advance is called:
//
//	c := clock.Fake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
//	go func() { <-c.After(300 * time.Millisecond) }()
//	c.WaitForTimers(1)
//	c.Advance(300 * time.Millisecond)
package clock

import "time"

// Clock abstracts the parts of the time package campfire depends on
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time after d
	// elapses. If d <= 0, the channel receives immediately.
	After(d time.Duration) <-chan time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time {
	if d <= 0 {
		channel := make(chan time.Time, 1)
		channel <- time.Now()
		return channel
	}
	return time.After(d)
}
