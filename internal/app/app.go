package app

import (
	"log/slog"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/services"
	activityservice "github.com/thenoetrevino/campfire/internal/services/activity"
	messageservice "github.com/thenoetrevino/campfire/internal/services/message"
	projectservice "github.com/thenoetrevino/campfire/internal/services/project"
	taskservice "github.com/thenoetrevino/campfire/internal/services/task"
	tasklistservice "github.com/thenoetrevino/campfire/internal/services/tasklist"
	"github.com/thenoetrevino/campfire/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container; every front end (CLI, TUI)
// talks to the data only through it.
type App struct {
	// In-memory collections shared by the services
	store *store.Store

	// Event system for live updates
	eventClient events.EventPublisher

	clock  clock.Clock
	logger *slog.Logger

	// Service layer
	ProjectService  projectservice.Service
	TaskService     taskservice.Service
	TaskListService tasklistservice.Service
	ActivityService activityservice.Service
	MessageService  messageservice.Service
}

// New creates a new App with all services initialized over st.
// This is the single entry point for creating the application container.
func New(st *store.Store, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	svcOpts := []services.Option{
		services.WithClock(cfg.clock),
		services.WithEventPublisher(cfg.eventClient),
		services.WithLogger(cfg.logger),
		services.WithAuthor(cfg.author),
	}
	if cfg.latency != nil {
		svcOpts = append(svcOpts, services.WithLatency(*cfg.latency))
	}
	deps := services.Resolve(svcOpts...)

	return &App{
		store:           st,
		eventClient:     cfg.eventClient,
		clock:           deps.Clock,
		logger:          deps.Logger,
		ProjectService:  projectservice.NewService(st, svcOpts...),
		TaskService:     taskservice.NewService(st, svcOpts...),
		TaskListService: tasklistservice.NewService(st, svcOpts...),
		ActivityService: activityservice.NewService(st, svcOpts...),
		MessageService:  messageservice.NewService(st, svcOpts...),
	}
}

// Store returns the underlying collections for read-only consumers such
// as exports.
func (a *App) Store() *store.Store {
	return a.store
}

// Clock returns the clock the services run on
func (a *App) Clock() clock.Clock {
	return a.clock
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Events returns the event publisher, which may be nil
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close releases the event publisher, if any
func (a *App) Close() error {
	if a.eventClient == nil {
		return nil
	}
	return a.eventClient.Close()
}
