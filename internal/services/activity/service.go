// Package activity keeps each project's audit trail
package activity

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/services"
	"github.com/thenoetrevino/campfire/internal/store"
)

// Service defines all activity operations
// Update and Delete exist for completeness; the dashboard only appends.
type Service interface {
	GetAll(ctx context.Context) ([]*models.Activity, error)
	GetByID(ctx context.Context, id int) (*models.Activity, error)
	GetByProjectID(ctx context.Context, projectID int) ([]*models.Activity, error)

	Create(ctx context.Context, req CreateActivityRequest) (*models.Activity, error)
	Update(ctx context.Context, id int, req UpdateActivityRequest) (*models.Activity, error)
	Delete(ctx context.Context, id int) error
}

// CreateActivityRequest encapsulates one audit entry
// A zero Timestamp is stamped with the current time.
type CreateActivityRequest struct {
	ProjectID int
	Action    models.ActivityAction
	Details   string
	Timestamp time.Time
}

// UpdateActivityRequest encapsulates a partial edit of an entry
type UpdateActivityRequest struct {
	Action    *models.ActivityAction
	Details   *string
	Timestamp *time.Time
}

type service struct {
	activities  *store.Collection[*models.Activity]
	latency     *latency.Simulator
	clock       clock.Clock
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new activity service
func NewService(st *store.Store, opts ...services.Option) Service {
	deps := services.Resolve(opts...)
	return &service{
		activities:  st.Activities,
		latency:     latency.New(deps.Clock, deps.Latency.Activity),
		clock:       deps.Clock,
		eventClient: deps.Events,
		logger:      deps.Logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]*models.Activity, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return s.activities.All(), nil
}

func (s *service) GetByID(ctx context.Context, id int) (*models.Activity, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	a, ok := s.activities.Get(id)
	if !ok {
		return nil, ErrActivityNotFound
	}
	return a, nil
}

// GetByProjectID returns a project's feed, newest first
func (s *service) GetByProjectID(ctx context.Context, projectID int) ([]*models.Activity, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	feed := s.activities.Filter(func(a *models.Activity) bool { return a.ProjectID == projectID })
	slices.SortStableFunc(feed, func(a, b *models.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return feed, nil
}

func (s *service) Create(ctx context.Context, req CreateActivityRequest) (*models.Activity, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	ts := req.Timestamp
	if ts.IsZero() {
		ts = s.clock.Now()
	}

	a := s.activities.Insert(func(id int) *models.Activity {
		return &models.Activity{
			ID:        id,
			ProjectID: req.ProjectID,
			Action:    req.Action,
			Details:   req.Details,
			Timestamp: ts,
		}
	})

	s.logger.Debug("activity recorded", "activity_id", a.ID, "action", a.Action)
	s.publishActivityEvent(events.EventCreated, a)
	return a, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateActivityRequest) (*models.Activity, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	a, ok := s.activities.Update(id, func(a *models.Activity) {
		if req.Action != nil {
			a.Action = *req.Action
		}
		if req.Details != nil {
			a.Details = *req.Details
		}
		if req.Timestamp != nil {
			a.Timestamp = *req.Timestamp
		}
	})
	if !ok {
		return nil, ErrActivityNotFound
	}

	s.publishActivityEvent(events.EventUpdated, a)
	return a, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.latency.Wait(ctx); err != nil {
		return err
	}

	a, ok := s.activities.Delete(id)
	if !ok {
		return ErrActivityNotFound
	}

	s.publishActivityEvent(events.EventDeleted, a)
	return nil
}

func (s *service) publishActivityEvent(kind events.EventType, a *models.Activity) {
	events.Publish(s.eventClient, events.Event{
		Type:      kind,
		Entity:    events.EntityActivity,
		EntityID:  a.ID,
		ProjectID: a.ProjectID,
		Timestamp: s.clock.Now(),
	})
}
