package app

import (
	"log/slog"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/latency"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	clock       clock.Clock
	latency     *latency.Profile
	author      string
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the clock every service waits and stamps on
func WithClock(c clock.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = c
	}
}

// WithLatency sets the simulated latency profile
func WithLatency(p latency.Profile) Option {
	return func(cfg *appConfig) {
		cfg.latency = &p
	}
}

// WithAuthor sets the name used for new threads and replies
func WithAuthor(name string) Option {
	return func(cfg *appConfig) {
		cfg.author = name
	}
}
