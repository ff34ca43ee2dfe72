// Package message implements the project message board: threads with an
// opening post and a flat list of replies.
package message

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/services"
	"github.com/thenoetrevino/campfire/internal/store"
)

// Service defines all message board operations
type Service interface {
	// Read operations
	GetAllThreads(ctx context.Context) ([]*models.MessageThread, error)
	GetThread(ctx context.Context, threadID int) (*models.MessageThread, error)
	GetThreadMessages(ctx context.Context, threadID int) ([]*models.Message, error)

	// Write operations
	CreateThread(ctx context.Context, req CreateThreadRequest) (*models.MessageThread, error)
	AddReply(ctx context.Context, threadID int, req ReplyRequest) (*models.Message, error)
}

// CreateThreadRequest encapsulates a new thread and its opening post
type CreateThreadRequest struct {
	Title   string
	Message string
}

// ReplyRequest encapsulates a reply to a thread
type ReplyRequest struct {
	Content string
}

type service struct {
	threads  *store.Collection[*models.MessageThread]
	messages *store.Collection[*models.Message]

	// mu serializes writes that touch both collections
	mu sync.Mutex

	listLatency     *latency.Simulator
	messagesLatency *latency.Simulator
	createLatency   *latency.Simulator
	replyLatency    *latency.Simulator

	clock       clock.Clock
	author      string
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new message service
func NewService(st *store.Store, opts ...services.Option) Service {
	deps := services.Resolve(opts...)
	return &service{
		threads:         st.Threads,
		messages:        st.Messages,
		listLatency:     latency.New(deps.Clock, deps.Latency.ThreadList),
		messagesLatency: latency.New(deps.Clock, deps.Latency.ThreadMessages),
		createLatency:   latency.New(deps.Clock, deps.Latency.ThreadCreate),
		replyLatency:    latency.New(deps.Clock, deps.Latency.Reply),
		clock:           deps.Clock,
		author:          deps.Author,
		eventClient:     deps.Events,
		logger:          deps.Logger,
	}
}

// GetAllThreads returns every thread, most recently active first
func (s *service) GetAllThreads(ctx context.Context) ([]*models.MessageThread, error) {
	if err := s.listLatency.Wait(ctx); err != nil {
		return nil, err
	}

	threads := s.threads.All()
	slices.SortStableFunc(threads, func(a, b *models.MessageThread) int {
		return b.LastActivity.Compare(a.LastActivity)
	})
	return threads, nil
}

// GetThread returns one thread
func (s *service) GetThread(ctx context.Context, threadID int) (*models.MessageThread, error) {
	if err := s.listLatency.Wait(ctx); err != nil {
		return nil, err
	}
	if threadID <= 0 {
		return nil, ErrInvalidThreadID
	}

	t, ok := s.threads.Get(threadID)
	if !ok {
		return nil, ErrThreadNotFound
	}
	return t, nil
}

// GetThreadMessages returns a thread's posts, oldest first
// An unknown thread yields an empty list.
func (s *service) GetThreadMessages(ctx context.Context, threadID int) ([]*models.Message, error) {
	if err := s.messagesLatency.Wait(ctx); err != nil {
		return nil, err
	}
	if threadID <= 0 {
		return nil, ErrInvalidThreadID
	}

	msgs := s.messages.Filter(func(m *models.Message) bool { return m.ThreadID == threadID })
	slices.SortStableFunc(msgs, func(a, b *models.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return msgs, nil
}

// CreateThread starts a thread and records its opening post
func (s *service) CreateThread(ctx context.Context, req CreateThreadRequest) (*models.MessageThread, error) {
	if err := s.createLatency.Wait(ctx); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Message)
	if title == "" {
		return nil, ErrEmptyThreadTitle
	}
	if body == "" {
		return nil, ErrEmptyThreadMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	thread := s.threads.Insert(func(id int) *models.MessageThread {
		return &models.MessageThread{
			ID:             id,
			Title:          title,
			Author:         s.author,
			CreatedAt:      now,
			LastActivity:   now,
			ReplyCount:     0,
			InitialMessage: body,
		}
	})
	s.messages.Insert(func(id int) *models.Message {
		return &models.Message{
			ID:        id,
			ThreadID:  thread.ID,
			Author:    s.author,
			Content:   body,
			Timestamp: now,
			IsInitial: true,
		}
	})

	s.logger.Debug("thread created", "thread_id", thread.ID)
	s.publish(events.EventCreated, events.EntityThread, thread.ID)
	return thread, nil
}

// AddReply appends a reply and bumps the thread's counters
func (s *service) AddReply(ctx context.Context, threadID int, req ReplyRequest) (*models.Message, error) {
	if err := s.replyLatency.Wait(ctx); err != nil {
		return nil, err
	}
	if threadID <= 0 {
		return nil, ErrInvalidThreadID
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyReply
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads.Get(threadID); !ok {
		return nil, ErrThreadNotFound
	}

	now := s.clock.Now()
	reply := s.messages.Insert(func(id int) *models.Message {
		return &models.Message{
			ID:        id,
			ThreadID:  threadID,
			Author:    s.author,
			Content:   content,
			Timestamp: now,
		}
	})
	s.threads.Update(threadID, func(t *models.MessageThread) {
		t.LastActivity = now
		t.ReplyCount++
	})

	s.logger.Debug("reply added", "thread_id", threadID, "message_id", reply.ID)
	s.publish(events.EventCreated, events.EntityMessage, reply.ID)
	s.publish(events.EventUpdated, events.EntityThread, threadID)
	return reply, nil
}

func (s *service) publish(kind events.EventType, entity events.Entity, id int) {
	events.Publish(s.eventClient, events.Event{
		Type:      kind,
		Entity:    entity,
		EntityID:  id,
		Timestamp: s.clock.Now(),
	})
}
