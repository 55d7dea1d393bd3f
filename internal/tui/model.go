// Package tui is the interactive weekly dashboard.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/session"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/utils"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenGoals
)

type Model struct {
	guard *session.Guard
	store *tracker.Store
	clock utils.Clock

	screen    screen
	help      help.Model
	spinner   spinner.Model
	bar       progress.Model
	form      *huh.Form
	loginForm *LoginFormModel
	goalsForm *GoalsFormModel

	selected  int
	loading   bool
	formError string // shown on the login and goals forms
	notice    string // non-blocking message on the dashboard
	width     int
	height    int
	quitting  bool
}

type Option func(*Model)

// WithClock sets the clock used to mark today's column.
func WithClock(c utils.Clock) Option {
	return func(m *Model) { m.clock = c }
}

func NewModel(guard *session.Guard, store *tracker.Store, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		guard:   guard,
		store:   store,
		clock:   time.Now,
		help:    help.New(),
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(28)),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if guard.State() == session.StateUnknown {
		guard.Resolve()
	}
	if guard.State() == session.StateAuthenticated {
		m.screen = screenDashboard
		m.loading = true
	} else {
		m.showLogin("")
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenDashboard {
		return tea.Batch(m.spinner.Tick, m.loadCmd(""))
	}
	return m.form.Init()
}

func (m *Model) showLogin(email string) {
	m.screen = screenLogin
	m.loginForm = &LoginFormModel{Action: actionLogin, Email: email}
	m.form = NewLoginForm(m.loginForm)
}

func (m *Model) showGoals() {
	m.screen = screenGoals
	m.goalsForm = newGoalsFormModel(m.store.Goals())
	m.form = NewGoalsForm(m.goalsForm)
}

func (m Model) selectedKind() models.HabitKind {
	return models.AllHabitKinds[m.selected]
}
