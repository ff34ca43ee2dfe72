// Package tasklist manages the named, colored groups tasks are sorted into
package tasklist

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/services"
	"github.com/thenoetrevino/campfire/internal/store"
)

// Service defines all task-list operations
type Service interface {
	// Read operations
	GetAll(ctx context.Context) ([]*models.TaskList, error)
	GetByID(ctx context.Context, id int) (*models.TaskList, error)
	GetByProjectID(ctx context.Context, projectID int) ([]*models.TaskList, error)

	// Write operations
	Create(ctx context.Context, req CreateTaskListRequest) (*models.TaskList, error)
	Update(ctx context.Context, id int, req UpdateTaskListRequest) (*models.TaskList, error)
	Delete(ctx context.Context, id int) error
}

// CreateTaskListRequest encapsulates data for creating a task list
type CreateTaskListRequest struct {
	ProjectID   int
	Name        string
	Description string
	Color       string // Hex color; empty means models.DefaultListColor
	IsCollapsed bool
	CreatedAt   time.Time // zero means now
}

// UpdateTaskListRequest encapsulates data for updating a task list
// Nil fields are left untouched.
type UpdateTaskListRequest struct {
	Name        *string
	Description *string
	Color       *string
	IsCollapsed *bool
}

type service struct {
	lists       *store.Collection[*models.TaskList]
	latency     *latency.Simulator
	clock       clock.Clock
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new task list service
func NewService(st *store.Store, opts ...services.Option) Service {
	deps := services.Resolve(opts...)
	return &service{
		lists:       st.TaskLists,
		latency:     latency.New(deps.Clock, deps.Latency.TaskList),
		clock:       deps.Clock,
		eventClient: deps.Events,
		logger:      deps.Logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]*models.TaskList, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return s.lists.All(), nil
}

func (s *service) GetByID(ctx context.Context, id int) (*models.TaskList, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	l, ok := s.lists.Get(id)
	if !ok {
		return nil, ErrTaskListNotFound
	}
	return l, nil
}

// GetByProjectID returns a project's lists in insertion order
func (s *service) GetByProjectID(ctx context.Context, projectID int) ([]*models.TaskList, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return s.lists.Filter(func(l *models.TaskList) bool { return l.ProjectID == projectID }), nil
}

func (s *service) Create(ctx context.Context, req CreateTaskListRequest) (*models.TaskList, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = models.DefaultListColor
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.clock.Now()
	}
	l := s.lists.Insert(func(id int) *models.TaskList {
		return &models.TaskList{
			ID:          id,
			ProjectID:   req.ProjectID,
			Name:        req.Name,
			Description: req.Description,
			Color:       color,
			IsCollapsed: req.IsCollapsed,
			CreatedAt:   createdAt,
		}
	})

	s.logger.Debug("task list created", "list_id", l.ID, "project_id", l.ProjectID)
	s.publishTaskListEvent(events.EventCreated, l)
	return l, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateTaskListRequest) (*models.TaskList, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	l, ok := s.lists.Update(id, func(l *models.TaskList) {
		if req.Name != nil {
			l.Name = *req.Name
		}
		if req.Description != nil {
			l.Description = *req.Description
		}
		if req.Color != nil {
			l.Color = *req.Color
		}
		if req.IsCollapsed != nil {
			l.IsCollapsed = *req.IsCollapsed
		}
	})
	if !ok {
		return nil, ErrTaskListNotFound
	}

	s.logger.Debug("task list updated", "list_id", id)
	s.publishTaskListEvent(events.EventUpdated, l)
	return l, nil
}

// Delete removes a task list; tasks referencing it are not touched
func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.latency.Wait(ctx); err != nil {
		return err
	}

	l, ok := s.lists.Delete(id)
	if !ok {
		return ErrTaskListNotFound
	}

	s.logger.Debug("task list deleted", "list_id", id)
	s.publishTaskListEvent(events.EventDeleted, l)
	return nil
}

func (s *service) publishTaskListEvent(kind events.EventType, l *models.TaskList) {
	events.Publish(s.eventClient, events.Event{
		Type:      kind,
		Entity:    events.EntityTaskList,
		EntityID:  l.ID,
		ProjectID: l.ProjectID,
		Timestamp: s.clock.Now(),
	})
}
