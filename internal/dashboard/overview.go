package dashboard

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
)

// RecentActivityLimit is how many feed entries the overview shows
const RecentActivityLimit = 10

// OverviewView is a snapshot of the overview page
type OverviewView struct {
	Loaded     bool
	Err        error
	Project    *models.Project
	Tasks      []*models.Task
	Activities []*models.Activity
	Stats      Stats
}

// RecentActivities returns at most RecentActivityLimit feed entries
func (v OverviewView) RecentActivities() []*models.Activity {
	if len(v.Activities) > RecentActivityLimit {
		return v.Activities[:RecentActivityLimit]
	}
	return v.Activities
}

// Overview loads a project together with its tasks and activity feed
type Overview struct {
	base
	projectID int

	mu         sync.RWMutex
	loaded     bool
	err        error
	project    *models.Project
	tasks      []*models.Task
	activities []*models.Activity
}

// NewOverview creates an overview controller for one project
func NewOverview(a *app.App, projectID int, opts ...Option) *Overview {
	return &Overview{base: newBase(a, opts), projectID: projectID}
}

// Load fetches the project, its tasks and its activity concurrently
// Either everything loads or the view holds only the error.
func (o *Overview) Load(ctx context.Context) error {
	var (
		project    *models.Project
		tasks      []*models.Task
		activities []*models.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = o.app.ProjectService.GetByID(gctx, o.projectID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = o.app.TaskService.GetByProjectID(gctx, o.projectID)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = o.app.ActivityService.GetByProjectID(gctx, o.projectID)
		return err
	})
	err := g.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.loaded, o.err = false, err
		o.project, o.tasks, o.activities = nil, nil, nil
		o.logger.Debug("overview load failed", "project_id", o.projectID, "error", err)
		return err
	}
	o.loaded, o.err = true, nil
	o.project, o.tasks, o.activities = project, tasks, activities
	return nil
}

// Reload retries Load
func (o *Overview) Reload(ctx context.Context) error {
	return o.Load(ctx)
}

// View returns the current state with freshly computed stats
func (o *Overview) View() OverviewView {
	o.mu.RLock()
	defer o.mu.RUnlock()

	v := OverviewView{Loaded: o.loaded, Err: o.err}
	if !o.loaded {
		return v
	}
	v.Project = o.project.Clone()
	v.Tasks = cloneAll(o.tasks)
	v.Activities = cloneAll(o.activities)
	v.Stats = ComputeStats(o.tasks, o.now())
	return v
}

// cloneAll copies a slice of records
func cloneAll[T interface{ Clone() T }](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
