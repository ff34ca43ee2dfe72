package models

import "time"

// MessageThread is a discussion started with an initial message
// ReplyCount is maintained by the reply operation, it is not derived
// from the message collection at read time
type MessageThread struct {
	ID             int       `json:"id" yaml:"id"`
	Title          string    `json:"title" yaml:"title"`
	Author         string    `json:"author" yaml:"author"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	LastActivity   time.Time `json:"last_activity" yaml:"last_activity"`
	ReplyCount     int       `json:"reply_count" yaml:"reply_count"`
	InitialMessage string    `json:"initial_message" yaml:"initial_message"`
}

// GetID returns the thread identifier
func (t *MessageThread) GetID() int { return t.ID }

// Clone returns a copy that shares no memory with t
func (t *MessageThread) Clone() *MessageThread {
	c := *t
	return &c
}

// Message is a single post in a thread, either the opening post or a reply
type Message struct {
	ID        int       `json:"id" yaml:"id"`
	ThreadID  int       `json:"thread_id" yaml:"thread_id"`
	Author    string    `json:"author" yaml:"author"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	IsInitial bool      `json:"is_initial" yaml:"is_initial"`
}

// GetID returns the message identifier
func (m *Message) GetID() int { return m.ID }

// Clone returns a copy that shares no memory with m
func (m *Message) Clone() *Message {
	c := *m
	return &c
}
