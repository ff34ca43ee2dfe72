package models

import "time"

// ActivityAction identifies what kind of change an Activity records
type ActivityAction string

const (
	ActionTaskCreated    ActivityAction = "task_created"
	ActionTaskCompleted  ActivityAction = "task_completed"
	ActionTaskReopened   ActivityAction = "task_reopened"
	ActionTaskUpdated    ActivityAction = "task_updated"
	ActionTaskDeleted    ActivityAction = "task_deleted"
	ActionListCreated    ActivityAction = "list_created"
	ActionListUpdated    ActivityAction = "list_updated"
	ActionListDeleted    ActivityAction = "list_deleted"
	ActionProjectCreated ActivityAction = "project_created"
	ActionProjectUpdated ActivityAction = "project_updated"
	ActionThreadCreated  ActivityAction = "thread_created"
	ActionReplyAdded     ActivityAction = "reply_added"
)

// Activity is one audit-trail entry of a project
type Activity struct {
	ID        int            `json:"id" yaml:"id"`
	ProjectID int            `json:"project_id" yaml:"project_id"`
	Action    ActivityAction `json:"action" yaml:"action"`
	Details   string         `json:"details" yaml:"details"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
}

// GetID returns the activity identifier
func (a *Activity) GetID() int { return a.ID }

// Clone returns a copy that shares no memory with a
func (a *Activity) Clone() *Activity {
	c := *a
	return &c
}
