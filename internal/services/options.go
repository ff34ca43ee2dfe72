// Package services holds the wiring every data service shares: the
// simulated latency profile, the clock it runs on, the change-event
// publisher and the logger.
package services

import (
	"log/slog"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
)

// Option is a functional option for configuring a data service
type Option func(*Deps)

// Deps is the resolved configuration of a data service
type Deps struct {
	Clock   clock.Clock
	Latency latency.Profile
	Events  events.EventPublisher
	Logger  *slog.Logger
	Author  string
}

// WithClock sets the clock used for latency and timestamps
func WithClock(c clock.Clock) Option {
	return func(d *Deps) {
		if c != nil {
			d.Clock = c
		}
	}
}

// WithLatency replaces the whole latency profile
func WithLatency(p latency.Profile) Option {
	return func(d *Deps) {
		d.Latency = p
	}
}

// WithEventPublisher sets where change events are sent
func WithEventPublisher(p events.EventPublisher) Option {
	return func(d *Deps) {
		d.Events = p
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(d *Deps) {
		if l != nil {
			d.Logger = l
		}
	}
}

// WithAuthor sets the name written on threads and replies
func WithAuthor(name string) Option {
	return func(d *Deps) {
		if name != "" {
			d.Author = name
		}
	}
}

// Resolve applies opts over the defaults: real clock, default latency,
// no event publisher, slog.Default() and the default author.
func Resolve(opts ...Option) Deps {
	d := Deps{
		Clock:   clock.Real(),
		Latency: latency.DefaultProfile(),
		Logger:  slog.Default(),
		Author:  models.DefaultAuthor,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
