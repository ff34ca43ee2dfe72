package clock

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a Clock that only moves when a test moves it
// Pending After channels are kept ordered by deadline and fire as Advance
// or Set carries the time past them.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []timer

	// registered is closed and replaced each time a timer is added
	registered chan struct{}
}

type timer struct {
	at time.Time
	ch chan time.Time
}

// Fake returns a FakeClock reading start
func Fake(start time.Time) *FakeClock {
	return &FakeClock{now: start, registered: make(chan struct{})}
}

// Now returns the fake time
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After returns a channel that receives once the clock reaches now+d
// Non-positive durations fire at once and are not counted as pending.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- c.now
		return ch
	}

	at := c.now.Add(d)
	// equal deadlines keep registration order
	i := sort.Search(len(c.pending), func(i int) bool { return c.pending[i].at.After(at) })
	c.pending = append(c.pending, timer{})
	copy(c.pending[i+1:], c.pending[i:])
	c.pending[i] = timer{at: at, ch: ch}

	close(c.registered)
	c.registered = make(chan struct{})
	return ch
}

// Advance moves the clock forward by d
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
	c.fire()
}

// Set moves the clock to t; going back in time fires nothing
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
	c.fire()
}

// fire delivers every timer at or before the current time, earliest first
func (c *FakeClock) fire() {
	c.mu.Lock()
	now := c.now
	n := sort.Search(len(c.pending), func(i int) bool { return c.pending[i].at.After(now) })
	due := append([]timer(nil), c.pending[:n]...)
	c.pending = append(c.pending[:0], c.pending[n:]...)
	c.mu.Unlock()

	for _, t := range due {
		t.ch <- now
	}
}

// WaitForTimers blocks until at least n timers are pending
// Tests call it before Advance so a goroutine's After is not missed.
func (c *FakeClock) WaitForTimers(n int) {
	for {
		c.mu.Lock()
		if len(c.pending) >= n {
			c.mu.Unlock()
			return
		}
		wait := c.registered
		c.mu.Unlock()
		<-wait
	}
}

// PendingCount returns how many timers have not fired
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
