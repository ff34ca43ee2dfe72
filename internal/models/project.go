package models

import "time"

// Project represents a container for task lists, tasks and activity
// Projects are the top-level organizational unit in campfire
type Project struct {
	ID          int       `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	MemberCount int       `json:"member_count" yaml:"member_count"`
}

// GetID returns the project identifier
func (p *Project) GetID() int { return p.ID }

// Clone returns a copy that shares no memory with p
func (p *Project) Clone() *Project {
	c := *p
	return &c
}
