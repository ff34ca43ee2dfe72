package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// Services depend on this behavior rather than on the concrete Bus, so
// tests can record what was published.
type EventPublisher interface {
	// SendEvent queues an event for every listener
	SendEvent(event Event) error

	// Listen returns a channel of events matching the current subscription
	// The channel closes when ctx is done or the publisher is closed.
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe changes the subscription to a specific project (0 = all)
	Subscribe(projectID int) error

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
