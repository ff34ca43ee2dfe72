package events

import (
	"fmt"
	"time"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Entity names the collection an event refers to
type Entity string

const (
	EntityProject  Entity = "project"
	EntityTask     Entity = "task"
	EntityTaskList Entity = "task_list"
	EntityThread   Entity = "thread"
	EntityMessage  Entity = "message"
	EntityActivity Entity = "activity"
)

// Event represents a change notification for one record
type Event struct {
	Type       EventType
	Entity     Entity
	EntityID   int
	ProjectID  int       // For filtering, 0 when the record has no project
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// String renders a short human label, e.g. "task 4 created"
func (e Event) String() string {
	return fmt.Sprintf("%s %d %s", e.Entity, e.EntityID, e.Type)
}
