// Package dashboard holds the page controllers: each one loads what a view
// needs from several services at once, keeps it as local state, and after a
// mutation merges the service's result back into that state and appends to
// the project's activity log.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
	activityservice "github.com/thenoetrevino/campfire/internal/services/activity"
)

// Option configures a controller
type Option func(*base)

// WithNotifier sets where success and error notices go
func WithNotifier(n Notifier) Option {
	return func(b *base) {
		if n != nil {
			b.notifier = n
		}
	}
}

// WithLogger sets the controller logger
func WithLogger(l *slog.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.logger = l
		}
	}
}

// base is embedded by every controller
type base struct {
	app      *app.App
	notifier Notifier
	logger   *slog.Logger
}

func newBase(a *app.App, opts []Option) base {
	b := base{
		app:      a,
		notifier: nopNotifier{},
		logger:   a.Logger(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) now() time.Time {
	return b.app.Clock().Now()
}

func (b *base) success(msg string) {
	b.notifier.Notify(Notice{Level: LevelSuccess, Message: msg})
}

func (b *base) fail(msg string, err error) {
	b.logger.Debug(msg, "error", err)
	b.notifier.Notify(Notice{Level: LevelError, Message: msg})
}

// recordActivity appends one audit entry
// A failure is logged and notified but never undoes the mutation it describes.
func (b *base) recordActivity(ctx context.Context, projectID int, action models.ActivityAction, details string) {
	_, err := b.app.ActivityService.Create(ctx, activityservice.CreateActivityRequest{
		ProjectID: projectID,
		Action:    action,
		Details:   details,
		Timestamp: b.now(),
	})
	if err != nil {
		b.logger.Warn("failed to record activity",
			"project_id", projectID,
			"action", action,
			"error", err)
		b.notifier.Notify(Notice{Level: LevelError, Message: "Failed to record activity"})
	}
}
