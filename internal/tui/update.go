package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/events"
)

// Update handles all incoming messages and returns the updated model
// Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.thread.Width = max(msg.Width-4, 20)
		m.thread.Height = max(msg.Height-10, 3)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		m.loading[msg.page] = false
		m.clampCursor(msg.page)
		return m, nil

	case actionDoneMsg:
		m.clampCursor(msg.page)
		if msg.page == PageMessages && m.threadOpen {
			m.refreshThread()
		}
		return m, nil

	case threadOpenedMsg:
		if msg.err == nil {
			m.threadOpen = true
			m.refreshThread()
		}
		return m, nil

	case noticeMsg:
		n := dashboard.Notice(msg)
		m.noticeSeq++
		m.notice = &n
		return m, tea.Batch(waitForNotice(m.notices), expireNotice(m.noticeSeq))

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case eventMsg:
		return m.handleEvent(events.Event(msg))

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent records the change and refreshes the pages that read straight
// from the services
func (m Model) handleEvent(e events.Event) (tea.Model, tea.Cmd) {
	m.lastEvent = e.String()
	cmds := []tea.Cmd{waitForEvent(m.events)}

	if e.ProjectID != 0 && e.ProjectID != m.projectID {
		return m, tea.Batch(cmds...)
	}
	switch e.Entity {
	case events.EntityTask, events.EntityActivity, events.EntityProject:
		for _, p := range []Page{PageOverview, PageCalendar} {
			if ok, _ := m.loaded(p); ok {
				cmds = append(cmds, m.reloadPage(p))
			}
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		return m.switchPage((m.page + 1) % pageCount)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchPage((m.page + pageCount - 1) % pageCount)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		m.loading[m.page] = true
		return m, m.reloadPage(m.page)
	}

	if r := msg.Runes; msg.Type == tea.KeyRunes && len(r) == 1 && r[0] >= '1' && r[0] < '1'+rune(pageCount) {
		return m.switchPage(Page(r[0] - '1'))
	}

	switch m.page {
	case PageTodos:
		return m.updateTodos(msg)
	case PageMessages:
		return m.updateMessages(msg)
	case PagePeople:
		m.moveCursor(msg, len(m.people.View().Members))
	}
	return m, nil
}

// switchPage shows p, loading it the first time it is visited
func (m Model) switchPage(p Page) (tea.Model, tea.Cmd) {
	m.page = p
	if ok, err := m.loaded(p); ok || err != nil || m.loading[p] {
		return m, nil
	}
	m.loading[p] = true
	return m, m.loadPage(p)
}

// moveCursor applies up/down to the current page's cursor
func (m *Model) moveCursor(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.page] > 0 {
			m.cursor[m.page]--
		}
		return true
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.page] < n-1 {
			m.cursor[m.page]++
		}
		return true
	}
	return false
}

// clampCursor keeps a page's cursor on an existing row after its data changed
func (m *Model) clampCursor(p Page) {
	var n int
	switch p {
	case PageTodos:
		n = len(todoRows(m.todos.View()))
	case PageMessages:
		n = len(m.messages.View().Threads)
	case PagePeople:
		n = len(m.people.View().Members)
	default:
		return
	}
	if m.cursor[p] >= n {
		m.cursor[p] = max(n-1, 0)
	}
}

// ============================================================================
// Text prompt
// ============================================================================

func (m Model) startInput(mode inputMode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.Focus()
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc || (msg.Type != tea.KeyRunes && key.Matches(msg, m.keys.Cancel)):
		m.mode = inputNone
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case msg.Type == tea.KeyEnter:
		mode, value := m.mode, m.input.Value()
		m.mode = inputNone
		m.input.Blur()
		m.input.Reset()
		return m.submitInput(mode, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	switch mode {
	case inputAddTask:
		return m, m.addTask(value, m.inputListID)
	case inputNewList:
		return m, m.createList(value)
	case inputThreadTitle:
		m.threadTitle = value
		return m.startInput(inputThreadBody, "Opening message")
	case inputThreadBody:
		return m, m.createThread(m.threadTitle, value)
	case inputReply:
		return m, m.reply(m.replyTo, value)
	}
	return m, nil
}

// prompt is the label shown above the text input
func (m Model) prompt() string {
	switch m.mode {
	case inputAddTask:
		return "New task"
	case inputNewList:
		return "New task list"
	case inputThreadTitle:
		return "New thread title"
	case inputThreadBody:
		return "Message for \"" + m.threadTitle + "\""
	case inputReply:
		return "Reply"
	}
	return ""
}
