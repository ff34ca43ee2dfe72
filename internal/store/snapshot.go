package store

import "github.com/thenoetrevino/campfire/internal/models"

// Snapshot is a point-in-time copy of every collection
// Each collection is read under its own lock, so a snapshot taken while
// writers run may mix states across collections.
type Snapshot struct {
	Projects    []*models.Project
	TaskLists   []*models.TaskList
	Tasks       []*models.Task
	Threads     []*models.MessageThread
	Messages    []*models.Message
	Activities  []*models.Activity
	TeamMembers []models.TeamMember
}

// Snapshot copies the current content of the store
func (s *Store) Snapshot() *Snapshot {
	return &Snapshot{
		Projects:    s.Projects.All(),
		TaskLists:   s.TaskLists.All(),
		Tasks:       s.Tasks.All(),
		Threads:     s.Threads.All(),
		Messages:    s.Messages.All(),
		Activities:  s.Activities.All(),
		TeamMembers: s.TeamMembers(),
	}
}

// ForProject narrows the snapshot to one project's records
// Threads, messages and team members are not project scoped and are kept.
func (s *Snapshot) ForProject(projectID int) *Snapshot {
	out := &Snapshot{
		Threads:     s.Threads,
		Messages:    s.Messages,
		TeamMembers: s.TeamMembers,
	}
	for _, p := range s.Projects {
		if p.ID == projectID {
			out.Projects = append(out.Projects, p)
		}
	}
	for _, l := range s.TaskLists {
		if l.ProjectID == projectID {
			out.TaskLists = append(out.TaskLists, l)
		}
	}
	for _, t := range s.Tasks {
		if t.ProjectID == projectID {
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, a := range s.Activities {
		if a.ProjectID == projectID {
			out.Activities = append(out.Activities, a)
		}
	}
	return out
}
