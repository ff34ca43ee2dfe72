package store

import (
	"slices"

	"github.com/thenoetrevino/campfire/internal/fixtures"
	"github.com/thenoetrevino/campfire/internal/models"
)

// Store owns one collection per entity kind
// It is built once at start-up and handed to each service explicitly.
type Store struct {
	Projects    *Collection[*models.Project]
	TaskLists   *Collection[*models.TaskList]
	Tasks       *Collection[*models.Task]
	Threads     *Collection[*models.MessageThread]
	Messages    *Collection[*models.Message]
	Activities  *Collection[*models.Activity]
	teamMembers []models.TeamMember
}

// New builds a Store from a seed
// Every seeded thread gets its opening post as an initial Message.
func New(seed *fixtures.Seed) *Store {
	messages := make([]*models.Message, 0, len(seed.MessageThreads))
	for i, thread := range seed.MessageThreads {
		messages = append(messages, &models.Message{
			ID:        i + 1,
			ThreadID:  thread.ID,
			Author:    thread.Author,
			Content:   thread.InitialMessage,
			Timestamp: thread.CreatedAt,
			IsInitial: true,
		})
	}

	return &Store{
		Projects:    NewCollection(seed.Projects),
		TaskLists:   NewCollection(seed.TaskLists),
		Tasks:       NewCollection(seed.Tasks),
		Threads:     NewCollection(seed.MessageThreads),
		Messages:    NewCollection(messages),
		Activities:  NewCollection(seed.Activities),
		teamMembers: slices.Clone(seed.TeamMembers),
	}
}

// Empty builds a Store with no records
func Empty() *Store {
	return New(&fixtures.Seed{})
}

// TeamMembers returns the static assignee table
func (s *Store) TeamMembers() []models.TeamMember {
	return slices.Clone(s.teamMembers)
}
