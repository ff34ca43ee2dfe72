package dashboard

import (
	"time"

	"github.com/thenoetrevino/campfire/internal/models"
)

// DueSoonWindow is how far ahead a due date counts as due soon
const DueSoonWindow = 24 * time.Hour

// Stats aggregates completion and schedule state of a set of tasks
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
	Overdue   int `json:"overdue"`
	DueSoon   int `json:"due_soon"`
}

// ComputeStats derives Stats from tasks as of now
func ComputeStats(tasks []*models.Task, now time.Time) Stats {
	var s Stats
	for _, t := range tasks {
		s.Total++
		switch {
		case t.Completed:
			s.Completed++
		case IsOverdue(t, now):
			s.Overdue++
		case IsDueSoon(t, now):
			s.DueSoon++
		}
	}
	s.Percent = Percent(s.Completed, s.Total)
	return s
}

// Percent returns completed/total as a whole percentage, rounded half up
// It is 0 when total is 0.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (completed*200 + total) / (2 * total)
}

// IsOverdue reports whether an open task's due date has passed
func IsOverdue(t *models.Task, now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// IsDueSoon reports whether an open task falls due within DueSoonWindow
func IsDueSoon(t *models.Task, now time.Time) bool {
	if t.Completed || t.DueDate == nil || t.DueDate.Before(now) {
		return false
	}
	return !t.DueDate.After(now.Add(DueSoonWindow))
}
