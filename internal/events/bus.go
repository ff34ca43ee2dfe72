package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrClosed is returned when sending to or listening on a closed bus
	ErrClosed = errors.New("event bus closed")
	// ErrQueueFull is returned when a listener's buffer cannot take another event
	ErrQueueFull = errors.New("event queue full")
)

const defaultBufferSize = 100

// Bus is an in-process EventPublisher
// Each Listen call gets its own buffered channel. Sends never block: a
// listener whose buffer is full drops the event and the drop is counted.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]*listener
	nextID    int
	projectID int
	closed    bool
	bufSize   int
	now       func() time.Time

	sequence atomic.Int64
	sent     atomic.Int64
	dropped  atomic.Int64
}

type listener struct {
	ch chan Event
}

// BusOption configures a Bus
type BusOption func(*Bus)

// WithBufferSize sets the per-listener channel capacity
func WithBufferSize(n int) BusOption {
	return func(b *Bus) {
		if n > 0 {
			b.bufSize = n
		}
	}
}

// WithNow sets the timestamp source for events sent without one
func WithNow(now func() time.Time) BusOption {
	return func(b *Bus) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBus creates an empty bus subscribed to all projects
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		listeners: make(map[int]*listener),
		bufSize:   defaultBufferSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SendEvent stamps the event with a sequence id and fans it out
// Events for other projects are filtered when a project subscription is set.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	if b.projectID != 0 && event.ProjectID != 0 && event.ProjectID != b.projectID {
		return nil
	}

	var full bool
	for _, l := range b.listeners {
		select {
		case l.ch <- event:
			b.sent.Add(1)
		default:
			b.dropped.Add(1)
			full = true
		}
	}
	if full {
		return ErrQueueFull
	}
	return nil
}

// Listen registers a new listener
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	id := b.nextID
	b.nextID++
	l := &listener{ch: make(chan Event, b.bufSize)}
	b.listeners[id] = l

	go func() {
		<-ctx.Done()
		b.remove(id)
	}()

	return l.ch, nil
}

// Subscribe limits delivery to one project; 0 means every project
func (b *Bus) Subscribe(projectID int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	b.projectID = projectID
	return nil
}

// Close closes every listener channel; further sends fail with ErrClosed
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, l := range b.listeners {
		close(l.ch)
		delete(b.listeners, id)
	}
	return nil
}

// Stats is a point-in-time view of bus counters
type Stats struct {
	Listeners int
	Published int64
	Delivered int64
	Dropped   int64
}

// Stats returns the current counters
func (b *Bus) Stats() Stats {
	b.mu.Lock()
	listeners := len(b.listeners)
	b.mu.Unlock()

	return Stats{
		Listeners: listeners,
		Published: b.sequence.Load(),
		Delivered: b.sent.Load(),
		Dropped:   b.dropped.Load(),
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if l, ok := b.listeners[id]; ok {
		close(l.ch)
		delete(b.listeners, id)
	}
}
