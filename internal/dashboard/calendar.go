package dashboard

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
)

// CalendarDay groups the tasks due on one calendar day
type CalendarDay struct {
	Date  time.Time // midnight UTC of the day
	Tasks []*models.Task
}

// CalendarView is a snapshot of the calendar page
type CalendarView struct {
	Loaded      bool
	Err         error
	Days        []CalendarDay // ascending
	Unscheduled int           // tasks without a due date
	Stats       Stats
}

// Calendar shows a project's tasks by due day
type Calendar struct {
	base
	projectID int

	mu     sync.RWMutex
	loaded bool
	err    error
	tasks  []*models.Task
}

// NewCalendar creates a calendar controller for one project
func NewCalendar(a *app.App, projectID int, opts ...Option) *Calendar {
	return &Calendar{base: newBase(a, opts), projectID: projectID}
}

// Load fetches the project's tasks
func (c *Calendar) Load(ctx context.Context) error {
	tasks, err := c.app.TaskService.GetByProjectID(ctx, c.projectID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loaded, c.err, c.tasks = false, err, nil
		return err
	}
	c.loaded, c.err, c.tasks = true, nil, tasks
	return nil
}

// Reload retries Load
func (c *Calendar) Reload(ctx context.Context) error {
	return c.Load(ctx)
}

// View groups tasks with a due date by UTC day
// Within a day tasks are ordered by due time, then id.
func (c *Calendar) View() CalendarView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v := CalendarView{Loaded: c.loaded, Err: c.err}
	if !c.loaded {
		return v
	}

	scheduled := []*models.Task{}
	for _, t := range c.tasks {
		if t.DueDate == nil {
			v.Unscheduled++
			continue
		}
		scheduled = append(scheduled, t.Clone())
	}
	slices.SortStableFunc(scheduled, func(a, b *models.Task) int {
		if n := a.DueDate.Compare(*b.DueDate); n != 0 {
			return n
		}
		return a.ID - b.ID
	})

	for _, t := range scheduled {
		day := dayOf(*t.DueDate)
		if n := len(v.Days); n > 0 && v.Days[n-1].Date.Equal(day) {
			v.Days[n-1].Tasks = append(v.Days[n-1].Tasks, t)
			continue
		}
		v.Days = append(v.Days, CalendarDay{Date: day, Tasks: []*models.Task{t}})
	}
	v.Stats = ComputeStats(c.tasks, c.now())
	return v
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
