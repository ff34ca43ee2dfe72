package dashboard

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
	messageservice "github.com/thenoetrevino/campfire/internal/services/message"
)

// MessagesView is a snapshot of the message board
type MessagesView struct {
	Loaded   bool
	Err      error
	Threads  []*models.MessageThread // most recently active first
	Current  *models.MessageThread   // nil until a thread is opened
	Messages []*models.Message       // posts of Current, oldest first
}

// Messages manages the thread list and the open thread
type Messages struct {
	base

	mu       sync.RWMutex
	loaded   bool
	err      error
	threads  []*models.MessageThread
	current  int
	messages []*models.Message
}

// NewMessages creates a message board controller
func NewMessages(a *app.App, opts ...Option) *Messages {
	return &Messages{base: newBase(a, opts)}
}

// Load fetches every thread
func (c *Messages) Load(ctx context.Context) error {
	threads, err := c.app.MessageService.GetAllThreads(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loaded, c.err, c.threads = false, err, nil
		c.current, c.messages = 0, nil
		return err
	}
	c.loaded, c.err, c.threads = true, nil, threads
	if !slices.ContainsFunc(threads, func(t *models.MessageThread) bool { return t.ID == c.current }) {
		c.current, c.messages = 0, nil
	}
	return nil
}

// Reload retries Load
func (c *Messages) Reload(ctx context.Context) error {
	return c.Load(ctx)
}

// OpenThread loads a thread's messages and makes it current
func (c *Messages) OpenThread(ctx context.Context, threadID int) ([]*models.Message, error) {
	if _, err := c.findThread(threadID); err != nil {
		c.fail("Failed to load messages", err)
		return nil, err
	}

	msgs, err := c.app.MessageService.GetThreadMessages(ctx, threadID)
	if err != nil {
		c.fail("Failed to load messages", err)
		return nil, err
	}

	c.mu.Lock()
	c.current, c.messages = threadID, msgs
	c.mu.Unlock()
	return cloneAll(msgs), nil
}

// CreateThread starts a new thread and puts it at the top of the list
func (c *Messages) CreateThread(ctx context.Context, title, message string) (*models.MessageThread, error) {
	thread, err := c.app.MessageService.CreateThread(ctx, messageservice.CreateThreadRequest{
		Title:   title,
		Message: message,
	})
	if err != nil {
		c.fail("Failed to create thread", err)
		return nil, err
	}

	c.mu.Lock()
	c.threads = append([]*models.MessageThread{thread.Clone()}, c.threads...)
	c.mu.Unlock()

	c.success("Thread created!")
	return thread, nil
}

// Reply posts to a thread and merges the reply into local state
func (c *Messages) Reply(ctx context.Context, threadID int, content string) (*models.Message, error) {
	reply, err := c.app.MessageService.AddReply(ctx, threadID, messageservice.ReplyRequest{Content: content})
	if err != nil {
		c.fail("Failed to post reply", err)
		return nil, err
	}

	c.mu.Lock()
	for _, t := range c.threads {
		if t.ID == threadID {
			t.ReplyCount++
			t.LastActivity = reply.Timestamp
			break
		}
	}
	slices.SortStableFunc(c.threads, func(a, b *models.MessageThread) int {
		return b.LastActivity.Compare(a.LastActivity)
	})
	if c.current == threadID {
		c.messages = append(c.messages, reply.Clone())
	}
	c.mu.Unlock()

	c.success("Reply posted!")
	return reply, nil
}

// View returns the current state
func (c *Messages) View() MessagesView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v := MessagesView{Loaded: c.loaded, Err: c.err}
	if !c.loaded {
		return v
	}
	v.Threads = cloneAll(c.threads)
	if c.current != 0 {
		for _, t := range c.threads {
			if t.ID == c.current {
				v.Current = t.Clone()
			}
		}
		v.Messages = cloneAll(c.messages)
	}
	return v
}

func (c *Messages) findThread(id int) (*models.MessageThread, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.threads {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, fmt.Errorf("thread %d: %w", id, ErrNotLoaded)
}
