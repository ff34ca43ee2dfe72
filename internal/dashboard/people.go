package dashboard

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
)

// PeopleView is a snapshot of the people page
type PeopleView struct {
	Loaded  bool
	Err     error
	Project *models.Project
	Members []models.TeamMember
}

// People loads a project and the team that can be assigned its tasks
type People struct {
	base
	projectID int

	mu      sync.RWMutex
	loaded  bool
	err     error
	project *models.Project
	members []models.TeamMember
}

// NewPeople creates a people controller for one project
func NewPeople(a *app.App, projectID int, opts ...Option) *People {
	return &People{base: newBase(a, opts), projectID: projectID}
}

// Load fetches the project and team members concurrently
func (c *People) Load(ctx context.Context) error {
	var (
		project *models.Project
		members []models.TeamMember
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = c.app.ProjectService.GetByID(gctx, c.projectID)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = c.app.TaskService.GetTeamMembers(gctx)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loaded, c.err, c.project, c.members = false, err, nil, nil
		return err
	}
	c.loaded, c.err, c.project, c.members = true, nil, project, members
	return nil
}

// View returns the current state
func (c *People) View() PeopleView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v := PeopleView{Loaded: c.loaded, Err: c.err}
	if !c.loaded {
		return v
	}
	v.Project = c.project.Clone()
	v.Members = append([]models.TeamMember(nil), c.members...)
	return v
}

// Reload retries Load
func (c *People) Reload(ctx context.Context) error {
	return c.Load(ctx)
}
