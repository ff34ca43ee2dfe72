// Package tui is the interactive dashboard: one project shown as tabs over
// the dashboard controllers, with notices and live change updates.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/config"
	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/tui/components"
	"github.com/thenoetrevino/campfire/internal/tui/theme"
)

// Page is one tab of the dashboard
type Page int

const (
	PageOverview Page = iota
	PageTodos
	PageMessages
	PagePeople
	PageCalendar
	pageCount
)

var pageNames = [...]string{"Overview", "To-dos", "Messages", "People", "Calendar"}

func (p Page) String() string {
	if p < 0 || p >= pageCount {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageNames[p]
}

// inputMode is what the text prompt is collecting
type inputMode int

const (
	inputNone inputMode = iota
	inputAddTask
	inputNewList
	inputThreadTitle
	inputThreadBody
	inputReply
)

// noticeBuffer bounds notices waiting to be shown; extra notices are dropped
const noticeBuffer = 16

// loader is the part of a controller the model drives generically
type loader interface {
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
}

// eventSource is implemented by publishers the model can follow, such as
// *events.Bus
type eventSource interface {
	Listen(ctx context.Context) (<-chan events.Event, error)
}

// Model represents the application state for the TUI
type Model struct {
	ctx       context.Context
	app       *app.App
	projectID int
	keys      keyMap

	overview *dashboard.Overview
	todos    *dashboard.Todos
	messages *dashboard.Messages
	people   *dashboard.People
	calendar *dashboard.Calendar

	page    Page
	loading map[Page]bool
	cursor  map[Page]int

	// text prompt
	mode        inputMode
	input       textinput.Model
	inputListID *int
	threadTitle string
	replyTo     int

	threadOpen bool
	thread     viewport.Model

	spinner  spinner.Model
	help     help.Model
	progress progress.Model

	notices   chan dashboard.Notice
	notice    *dashboard.Notice
	noticeSeq int
	events    <-chan events.Event
	lastEvent string

	width, height int
}

// New creates the dashboard model for one project
// Loading starts when the program calls Init.
func New(ctx context.Context, a *app.App, km config.KeyMappings, projectID int) Model {
	notices := make(chan dashboard.Notice, noticeBuffer)
	notifier := dashboard.NotifierFunc(func(n dashboard.Notice) {
		select {
		case notices <- n:
		default:
		}
	})
	opts := []dashboard.Option{
		dashboard.WithNotifier(notifier),
		dashboard.WithLogger(a.Logger()),
	}

	input := textinput.New()
	input.CharLimit = 200
	input.Prompt = "> "
	input.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctx:       ctx,
		app:       a,
		projectID: projectID,
		keys:      newKeyMap(km),

		overview: dashboard.NewOverview(a, projectID, opts...),
		todos:    dashboard.NewTodos(a, projectID, opts...),
		messages: dashboard.NewMessages(a, opts...),
		people:   dashboard.NewPeople(a, projectID, opts...),
		calendar: dashboard.NewCalendar(a, projectID, opts...),

		page:    PageOverview,
		loading: map[Page]bool{PageOverview: true},
		cursor:  map[Page]int{},

		input:  input,
		thread: viewport.New(76, 12),

		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
		),
		help: help.New(),
		progress: progress.New(
			progress.WithSolidFill(theme.Done),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),

		notices: notices,
	}

	if src, ok := a.Events().(eventSource); ok {
		if ch, err := src.Listen(ctx); err == nil {
			m.events = ch
		} else {
			a.Logger().Warn("event bus unavailable", "error", err)
		}
	}
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadPage(PageOverview),
		waitForNotice(m.notices),
		waitForEvent(m.events),
	)
}

// Run starts the dashboard and blocks until the user quits
func Run(ctx context.Context, a *app.App, cfg *config.Config, projectID int) error {
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	p := tea.NewProgram(
		New(ctx, a, cfg.KeyMappings, projectID),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

func (m Model) controller(p Page) loader {
	switch p {
	case PageTodos:
		return m.todos
	case PageMessages:
		return m.messages
	case PagePeople:
		return m.people
	case PageCalendar:
		return m.calendar
	default:
		return m.overview
	}
}

// loaded reports whether page p holds data, and the last load error
func (m Model) loaded(p Page) (bool, error) {
	switch p {
	case PageTodos:
		v := m.todos.View()
		return v.Loaded, v.Err
	case PageMessages:
		v := m.messages.View()
		return v.Loaded, v.Err
	case PagePeople:
		v := m.people.View()
		return v.Loaded, v.Err
	case PageCalendar:
		v := m.calendar.View()
		return v.Loaded, v.Err
	default:
		v := m.overview.View()
		return v.Loaded, v.Err
	}
}

// projectName is shown in the status bar once any page knows it
func (m Model) projectName() string {
	if v := m.overview.View(); v.Loaded {
		return v.Project.Name
	}
	if v := m.people.View(); v.Loaded {
		return v.Project.Name
	}
	return fmt.Sprintf("Project %d", m.projectID)
}
