package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/models"
)

// noticeDuration is how long a notice stays in the tab bar
const noticeDuration = 3 * time.Second

type pageLoadedMsg struct {
	page Page
	err  error
}

type actionDoneMsg struct {
	page Page
	err  error
}

type threadOpenedMsg struct {
	threadID int
	messages []*models.Message
	err      error
}

type noticeMsg dashboard.Notice

type noticeExpiredMsg struct{ seq int }

type eventMsg events.Event

func (m Model) loadPage(p Page) tea.Cmd {
	ctx, ctrl := m.ctx, m.controller(p)
	return func() tea.Msg {
		return pageLoadedMsg{page: p, err: ctrl.Load(ctx)}
	}
}

func (m Model) reloadPage(p Page) tea.Cmd {
	ctx, ctrl := m.ctx, m.controller(p)
	return func() tea.Msg {
		return pageLoadedMsg{page: p, err: ctrl.Reload(ctx)}
	}
}

// act runs a controller mutation off the update loop
// Errors are already notified by the controller.
func (m Model) act(p Page, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{page: p, err: fn(ctx)}
	}
}

func (m Model) openThread(threadID int) tea.Cmd {
	ctx, board := m.ctx, m.messages
	return func() tea.Msg {
		msgs, err := board.OpenThread(ctx, threadID)
		return threadOpenedMsg{threadID: threadID, messages: msgs, err: err}
	}
}

func waitForNotice(ch <-chan dashboard.Notice) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg(n)
	}
}

func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}

func expireNotice(seq int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
