package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellfit/internal/logger"
	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/week"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authDoneMsg:
		m.loading = false
		if msg.err != nil {
			email := m.loginForm.Email
			m.showLogin(email)
			m.formError = msg.err.Error()
			return m, m.form.Init()
		}
		m.formError = ""
		m.screen = screenDashboard
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadCmd(""))

	case weekLoadedMsg, mutatedMsg, goalsSavedMsg:
		if m.screen == screenLogin {
			// result of a request issued before logout
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case weekLoadedMsg:
		if superseded(msg.err) {
			// a newer load is in flight and will report for itself
			return m, nil
		}
		m.loading = false
		return m, nil

	case mutatedMsg:
		m.loading = false
		return m, nil

	case goalsSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = "Goals not saved: " + msg.err.Error()
		} else {
			m.notice = ""
		}
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenGoals:
		return m.updateGoals(msg)
	}
	return m.updateDashboard(msg)
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && (msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC) {
		m.quitting = true
		return m, tea.Quit
	}

	m, cmd := m.updateForm(msg)
	switch m.form.State {
	case huh.StateCompleted:
		m.loading = true
		return m, tea.Batch(cmd, m.spinner.Tick, m.authCmd(*m.loginForm))
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) updateGoals(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.screen = screenDashboard
		return m, nil
	}

	m, cmd := m.updateForm(msg)
	switch m.form.State {
	case huh.StateCompleted:
		m.screen = screenDashboard
		m.loading = true
		return m, tea.Batch(cmd, m.spinner.Tick, m.saveGoalsCmd(m.goalsForm.Fields()))
	case huh.StateAborted:
		m.screen = screenDashboard
	}
	return m, cmd
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.selected < len(models.AllHabitKinds)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, keys.Dismiss):
		m.store.ClearMutationError()
		m.notice = ""
	case key.Matches(keyMsg, keys.Logout):
		if err := m.guard.Logout(); err != nil {
			logger.Warn("logout did not clear stored credential", "error", err)
		}
		m.store.Reset()
		m.loading = false
		m.notice = ""
		m.showLogin("")
		return m, m.form.Init()
	}

	// Everything below talks to the server; one request at a time.
	if m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(keyMsg, keys.Increment):
		cmd = m.mutateCmd(m.selectedKind(), tracker.Increment)
	case key.Matches(keyMsg, keys.Decrement):
		cmd = m.mutateCmd(m.selectedKind(), tracker.Decrement)
	case key.Matches(keyMsg, keys.PrevWeek):
		cmd = m.navigateCmd(week.Previous)
	case key.Matches(keyMsg, keys.NextWeek):
		cmd = m.navigateCmd(week.Next)
	case key.Matches(keyMsg, keys.ThisWeek):
		cmd = m.loadCmd("")
	case key.Matches(keyMsg, keys.Refresh):
		cmd = m.refreshCmd()
	case key.Matches(keyMsg, keys.Goals):
		m.formError = ""
		m.showGoals()
		return m, m.form.Init()
	}
	if cmd == nil {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, cmd)
}
