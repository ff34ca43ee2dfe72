package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/render"
	"github.com/thenoetrevino/campfire/internal/tui/components"
)

func (m Model) selectedThread() (*models.MessageThread, bool) {
	threads := m.messages.View().Threads
	i := m.cursor[PageMessages]
	if i < 0 || i >= len(threads) {
		return nil, false
	}
	return threads[i], true
}

func (m Model) updateMessages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ok, _ := m.loaded(PageMessages); !ok {
		return m, nil
	}

	if m.threadOpen {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.threadOpen = false
			return m, nil
		case key.Matches(msg, m.keys.Reply):
			if current := m.messages.View().Current; current != nil {
				m.replyTo = current.ID
				return m.startInput(inputReply, "Write a reply")
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.thread, cmd = m.thread.Update(msg)
		return m, cmd
	}

	if m.moveCursor(msg, len(m.messages.View().Threads)) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NewThread):
		return m.startInput(inputThreadTitle, "Thread title")
	case key.Matches(msg, m.keys.OpenThread):
		if t, ok := m.selectedThread(); ok {
			return m, m.openThread(t.ID)
		}
	case key.Matches(msg, m.keys.Reply):
		if t, ok := m.selectedThread(); ok {
			m.replyTo = t.ID
			return m.startInput(inputReply, "Write a reply")
		}
	}
	return m, nil
}

func (m Model) createThread(title, body string) tea.Cmd {
	return m.act(PageMessages, func(ctx context.Context) error {
		_, err := m.messages.CreateThread(ctx, title, body)
		return err
	})
}

func (m Model) reply(threadID int, content string) tea.Cmd {
	return m.act(PageMessages, func(ctx context.Context) error {
		_, err := m.messages.Reply(ctx, threadID, content)
		return err
	})
}

// refreshThread re-renders the open thread into the viewport
func (m *Model) refreshThread() {
	v := m.messages.View()
	if v.Current == nil {
		m.threadOpen = false
		return
	}

	width := max(m.thread.Width-2, 20)
	var b strings.Builder
	for _, msg := range v.Messages {
		fmt.Fprintf(&b, "%s %s\n",
			components.TitleStyle.Render(msg.Author),
			components.SubtleStyle.Render(msg.Timestamp.Format("Jan 2, 15:04")))
		b.WriteString(render.Markdown(msg.Content, width))
		b.WriteString("\n\n")
	}
	m.thread.SetContent(b.String())
	m.thread.GotoBottom()
}

func (m Model) viewMessages() string {
	v := m.messages.View()

	if m.threadOpen && v.Current != nil {
		header := fmt.Sprintf("%s  %s",
			components.TitleStyle.Render(v.Current.Title),
			components.SubtleStyle.Render(fmt.Sprintf("%d replies", v.Current.ReplyCount)))
		return header + "\n\n" + m.thread.View()
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Message board") + "\n\n")
	if len(v.Threads) == 0 {
		b.WriteString(components.SubtleStyle.Render("No threads yet. Press n to start one."))
		return b.String()
	}
	for i, t := range v.Threads {
		line := fmt.Sprintf("%s  %s",
			t.Title,
			components.SubtleStyle.Render(fmt.Sprintf("%s · %d replies · %s",
				t.Author, t.ReplyCount, t.LastActivity.Format("Jan 2"))))
		if i == m.cursor[PageMessages] {
			line = components.SelectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
