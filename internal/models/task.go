package models

import "time"

// Task represents a single to-do inside a project
// A task optionally belongs to a TaskList and may be assigned to a team member
type Task struct {
	ID         int        `json:"id" yaml:"id"`
	ProjectID  int        `json:"project_id" yaml:"project_id"`
	ListID     *int       `json:"list_id" yaml:"list_id"`
	Title      string     `json:"title" yaml:"title"`
	Completed  bool       `json:"completed" yaml:"completed"`
	DueDate    *time.Time `json:"due_date" yaml:"due_date"`
	AssigneeID *int       `json:"assignee_id" yaml:"assignee_id"`
	Notes      string     `json:"notes" yaml:"notes"`
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"`
}

// GetID returns the task identifier
func (t *Task) GetID() int { return t.ID }

// Clone returns a copy of t with its optional fields re-allocated
func (t *Task) Clone() *Task {
	c := *t
	c.ListID = cloneInt(t.ListID)
	c.AssigneeID = cloneInt(t.AssigneeID)
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

// InList reports whether the task belongs to the given list
func (t *Task) InList(listID int) bool {
	return t.ListID != nil && *t.ListID == listID
}

// TaskList groups tasks within a project
type TaskList struct {
	ID          int       `json:"id" yaml:"id"`
	ProjectID   int       `json:"project_id" yaml:"project_id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Color       string    `json:"color" yaml:"color"`
	IsCollapsed bool      `json:"is_collapsed" yaml:"is_collapsed"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// GetID returns the task list identifier
func (l *TaskList) GetID() int { return l.ID }

// Clone returns a copy that shares no memory with l
func (l *TaskList) Clone() *TaskList {
	c := *l
	return &c
}

// TeamMember is an entry of the static assignee lookup table
type TeamMember struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int { return &v }
