package project

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

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	GetTaskCount(ctx context.Context, projectID int) (int, error)

	// Write operations
	Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int, req UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
	MemberCount int // 0 means the default of one member
}

// UpdateProjectRequest encapsulates data for updating a project
// Nil fields are left untouched.
type UpdateProjectRequest struct {
	Name        *string
	Description *string
	MemberCount *int
}

// service implements Service interface
type service struct {
	projects    *store.Collection[*models.Project]
	tasks       *store.Collection[*models.Task]
	latency     *latency.Simulator
	clock       clock.Clock
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new project service over the store's projects
func NewService(st *store.Store, opts ...services.Option) Service {
	deps := services.Resolve(opts...)
	return &service{
		projects:    st.Projects,
		tasks:       st.Tasks,
		latency:     latency.New(deps.Clock, deps.Latency.Project),
		clock:       deps.Clock,
		eventClient: deps.Events,
		logger:      deps.Logger,
	}
}

// GetAll retrieves every project in insertion order
func (s *service) GetAll(ctx context.Context) ([]*models.Project, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return s.projects.All(), nil
}

// GetByID retrieves a single project
func (s *service) GetByID(ctx context.Context, id int) (*models.Project, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	p, ok := s.projects.Get(id)
	if !ok {
		return nil, ErrProjectNotFound
	}
	return p, nil
}

// GetTaskCount returns how many tasks belong to a project
func (s *service) GetTaskCount(ctx context.Context, projectID int) (int, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return 0, err
	}
	if _, ok := s.projects.Get(projectID); !ok {
		return 0, ErrProjectNotFound
	}

	tasks := s.tasks.Filter(func(t *models.Task) bool { return t.ProjectID == projectID })
	return len(tasks), nil
}

// Create adds a project, always stamped with the current time
func (s *service) Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	memberCount := req.MemberCount
	if memberCount <= 0 {
		memberCount = models.DefaultMemberCount
	}

	now := s.clock.Now()
	p := s.projects.Insert(func(id int) *models.Project {
		return &models.Project{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			CreatedAt:   now,
			MemberCount: memberCount,
		}
	})

	s.logger.Debug("project created", "project_id", p.ID)
	s.publishProjectEvent(events.EventCreated, p.ID, now)
	return p, nil
}

// Update merges every non-nil request field over the stored project
func (s *service) Update(ctx context.Context, id int, req UpdateProjectRequest) (*models.Project, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	p, ok := s.projects.Update(id, func(p *models.Project) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.MemberCount != nil {
			p.MemberCount = *req.MemberCount
		}
	})
	if !ok {
		return nil, ErrProjectNotFound
	}

	s.logger.Debug("project updated", "project_id", id)
	s.publishProjectEvent(events.EventUpdated, id, s.clock.Now())
	return p, nil
}

// Delete removes a project
// Tasks, lists and activity of the project are left in place.
func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.latency.Wait(ctx); err != nil {
		return err
	}
	if _, ok := s.projects.Delete(id); !ok {
		return ErrProjectNotFound
	}

	s.logger.Debug("project deleted", "project_id", id)
	s.publishProjectEvent(events.EventDeleted, id, s.clock.Now())
	return nil
}

// publishProjectEvent is a helper to publish project events
func (s *service) publishProjectEvent(kind events.EventType, projectID int, at time.Time) {
	events.Publish(s.eventClient, events.Event{
		Type:      kind,
		Entity:    events.EntityProject,
		EntityID:  projectID,
		ProjectID: projectID,
		Timestamp: at,
	})
}
