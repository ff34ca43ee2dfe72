package task

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

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetAll(ctx context.Context) ([]*models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	GetByProjectID(ctx context.Context, projectID int) ([]*models.Task, error)

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, id int, req UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, id int) error

	// Assignees
	GetTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	GetTeamMember(ctx context.Context, id int) (models.TeamMember, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
// Zero values take the defaults: no list, no due date, no assignee,
// empty notes and a CreatedAt of now.
type CreateTaskRequest struct {
	ProjectID  int
	ListID     *int
	Title      string
	Completed  bool
	DueDate    *time.Time
	AssigneeID *int
	Notes      string
	CreatedAt  time.Time
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update.
// DueDate "" clears the due date; ListID 0 and AssigneeID 0 clear theirs.
type UpdateTaskRequest struct {
	ProjectID  *int
	ListID     *int
	Title      *string
	Completed  *bool
	DueDate    *string
	AssigneeID *int
	Notes      *string
}

// UpdateRequestFrom builds a request that sets every field to t's values
func UpdateRequestFrom(t *models.Task) UpdateTaskRequest {
	listID := 0
	if t.ListID != nil {
		listID = *t.ListID
	}
	assigneeID := 0
	if t.AssigneeID != nil {
		assigneeID = *t.AssigneeID
	}
	due := models.FormatDueDate(t.DueDate)

	return UpdateTaskRequest{
		ProjectID:  &t.ProjectID,
		ListID:     &listID,
		Title:      &t.Title,
		Completed:  &t.Completed,
		DueDate:    &due,
		AssigneeID: &assigneeID,
		Notes:      &t.Notes,
	}
}

// service implements Service interface
type service struct {
	tasks       *store.Collection[*models.Task]
	members     []models.TeamMember
	latency     *latency.Simulator
	clock       clock.Clock
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new task service
func NewService(st *store.Store, opts ...services.Option) Service {
	deps := services.Resolve(opts...)
	return &service{
		tasks:       st.Tasks,
		members:     st.TeamMembers(),
		latency:     latency.New(deps.Clock, deps.Latency.Task),
		clock:       deps.Clock,
		eventClient: deps.Events,
		logger:      deps.Logger,
	}
}

// GetAll retrieves every task in insertion order
func (s *service) GetAll(ctx context.Context) ([]*models.Task, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return s.tasks.All(), nil
}

// GetByID retrieves a single task
func (s *service) GetByID(ctx context.Context, id int) (*models.Task, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	t, ok := s.tasks.Get(id)
	if !ok {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

// GetByProjectID retrieves a project's tasks, newest first
func (s *service) GetByProjectID(ctx context.Context, projectID int) ([]*models.Task, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	tasks := s.tasks.Filter(func(t *models.Task) bool { return t.ProjectID == projectID })
	slices.SortStableFunc(tasks, func(a, b *models.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tasks, nil
}

// Create handles task creation and applies the optional-field defaults
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.clock.Now()
	}

	t := s.tasks.Insert(func(id int) *models.Task {
		task := &models.Task{
			ID:         id,
			ProjectID:  req.ProjectID,
			ListID:     optionalID(req.ListID),
			Title:      req.Title,
			Completed:  req.Completed,
			AssigneeID: optionalID(req.AssigneeID),
			Notes:      req.Notes,
			CreatedAt:  createdAt,
		}
		if req.DueDate != nil {
			due := *req.DueDate
			task.DueDate = &due
		}
		return task
	})

	s.logger.Debug("task created", "task_id", t.ID, "project_id", t.ProjectID)
	s.publishTaskEvent(events.EventCreated, t)
	return t, nil
}

// Update merges every non-nil request field over the stored task
func (s *service) Update(ctx context.Context, id int, req UpdateTaskRequest) (*models.Task, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	// The due date is parsed under the lock, so an unknown id reports
	// ErrTaskNotFound before any validation error
	var parseErr error
	t, ok := s.tasks.Update(id, func(t *models.Task) {
		var due *time.Time
		if req.DueDate != nil {
			due, parseErr = models.ParseDueDate(*req.DueDate)
			if parseErr != nil {
				return
			}
		}
		if req.ProjectID != nil {
			t.ProjectID = *req.ProjectID
		}
		if req.ListID != nil {
			t.ListID = optionalID(req.ListID)
		}
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Completed != nil {
			t.Completed = *req.Completed
		}
		if req.DueDate != nil {
			t.DueDate = due
		}
		if req.AssigneeID != nil {
			t.AssigneeID = optionalID(req.AssigneeID)
		}
		if req.Notes != nil {
			t.Notes = *req.Notes
		}
	})
	if !ok {
		return nil, ErrTaskNotFound
	}
	if parseErr != nil {
		return nil, parseErr
	}

	s.logger.Debug("task updated", "task_id", id)
	s.publishTaskEvent(events.EventUpdated, t)
	return t, nil
}

// Delete removes a task
func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.latency.Wait(ctx); err != nil {
		return err
	}

	t, ok := s.tasks.Delete(id)
	if !ok {
		return ErrTaskNotFound
	}

	s.logger.Debug("task deleted", "task_id", id)
	s.publishTaskEvent(events.EventDeleted, t)
	return nil
}

// GetTeamMembers returns the fixed assignee table
func (s *service) GetTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.members), nil
}

// GetTeamMember looks up one assignee
func (s *service) GetTeamMember(ctx context.Context, id int) (models.TeamMember, error) {
	if err := s.latency.Wait(ctx); err != nil {
		return models.TeamMember{}, err
	}

	i := slices.IndexFunc(s.members, func(m models.TeamMember) bool { return m.ID == id })
	if i < 0 {
		return models.TeamMember{}, ErrTeamMemberNotFound
	}
	return s.members[i], nil
}

// optionalID maps a missing or zero id to nil
func optionalID(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	return models.IntPtr(*v)
}

// publishTaskEvent is a helper to publish task events
func (s *service) publishTaskEvent(kind events.EventType, t *models.Task) {
	events.Publish(s.eventClient, events.Event{
		Type:      kind,
		Entity:    events.EntityTask,
		EntityID:  t.ID,
		ProjectID: t.ProjectID,
		Timestamp: s.clock.Now(),
	})
}
