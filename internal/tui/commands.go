package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/validation"
	"github.com/julianstephens/wellfit/internal/week"
)

type authDoneMsg struct {
	err error
}

// weekLoadedMsg follows any operation that ends in a week fetch.
type weekLoadedMsg struct {
	err error
}

type mutatedMsg struct {
	kind models.HabitKind
	err  error
}

type goalsSavedMsg struct {
	err error
}

func (m Model) authCmd(form LoginFormModel) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if form.Action == actionRegister {
			err = m.guard.Register(ctx, form.Credentials())
		} else {
			err = m.guard.Login(ctx, form.Credentials())
		}
		return authDoneMsg{err: err}
	}
}

func (m Model) loadCmd(anchor string) tea.Cmd {
	return func() tea.Msg {
		return weekLoadedMsg{err: m.store.Load(context.Background(), anchor)}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	anchor := m.store.Anchor()
	return func() tea.Msg {
		_, err := m.store.LoadWeek(context.Background(), anchor)
		return weekLoadedMsg{err: err}
	}
}

func (m Model) navigateCmd(dir week.Direction) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.Navigate(context.Background(), dir)
		return weekLoadedMsg{err: err}
	}
}

func (m Model) mutateCmd(kind models.HabitKind, intent tracker.Intent) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{kind: kind, err: m.store.Mutate(context.Background(), kind, intent)}
	}
}

func (m Model) saveGoalsCmd(fields map[string]string) tea.Cmd {
	return func() tea.Msg {
		goals, res := validation.GoalsFromFields(fields)
		if res.HasIssues() {
			return goalsSavedMsg{err: res.Err()}
		}
		if len(goals) == 0 {
			return goalsSavedMsg{}
		}
		_, err := m.store.SaveGoals(context.Background(), goals)
		return goalsSavedMsg{err: err}
	}
}

// superseded reports whether err only means a newer load replaced this one.
func superseded(err error) bool {
	return errors.Is(err, tracker.ErrSuperseded)
}
