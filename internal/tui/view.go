package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/tracker"
	"github.com/julianstephens/wellfit/internal/week"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.screen {
	case screenLogin:
		content = m.viewLogin()
	case screenGoals:
		content = m.viewGoals()
	default:
		content = m.viewDashboard()
	}
	return docStyle.Render(content)
}

func (m Model) viewLogin() string {
	parts := []string{
		titleStyle.Render("wellfit"),
		dimStyle.Render("Sign in to track water, sleep and workouts."),
		"",
		m.form.View(),
	}
	if m.loading {
		parts = append(parts, m.spinner.View()+" Signing in...")
	}
	if m.formError != "" {
		parts = append(parts, dangerStyle.Render(m.formError))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewGoals() string {
	parts := []string{
		titleStyle.Render("Weekly goals"),
		dimStyle.Render("Daily targets; each must be at least 1. Esc to cancel."),
		"",
		m.form.View(),
	}
	if m.formError != "" {
		parts = append(parts, dangerStyle.Render(m.formError))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewDashboard() string {
	status := m.store.Status()
	data, ok := m.store.Week()

	header := titleStyle.Render("wellfit")
	if ok {
		header += "  Week of " + data.WeekStart
		if data.WeekStart == week.Start(m.clock()) {
			header += dimStyle.Render(" (this week)")
		}
	}
	if m.loading {
		header += " " + m.spinner.View()
	}

	parts := []string{header, ""}
	if status.MutationErr != nil {
		parts = append(parts, warningStyle.Render("Update failed: "+status.MutationErr.Error()+" (esc to dismiss)"))
	}
	if m.notice != "" {
		parts = append(parts, warningStyle.Render(m.notice))
	}

	switch {
	case status.FetchErr != nil:
		parts = append(parts,
			dangerStyle.Render("Could not load your week: "+status.FetchErr.Error()),
			dimStyle.Render("Press r to retry or o to log out."),
		)
	case !ok:
		parts = append(parts, m.spinner.View()+" Loading your week...")
	default:
		highlight := data.WeekStart == week.Start(m.clock())
		for i, v := range m.store.Views() {
			parts = append(parts, m.viewCard(v, i == m.selected, highlight))
		}
	}

	parts = append(parts, "", m.help.View(keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewCard(v tracker.HabitView, selected, highlightToday bool) string {
	todayIdx := m.store.DayIndexToday()
	card, title := cardFor(v.Kind, selected)

	var days []string
	for i, e := range v.Series {
		cell := fmt.Sprintf("%s %2d", models.DayLabels[i], e.Value)
		if highlightToday && i == todayIdx {
			cell = todayStyle(v.Kind).Render(cell)
		} else if e.Value == 0 {
			cell = dimStyle.Render(cell)
		}
		days = append(days, cell)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title.Render(v.Kind.Title()),
		fmt.Sprintf("Today: %d / %d", v.Today, v.Goal),
		m.bar.ViewAs(v.Progress)+fmt.Sprintf(" %3.0f%%", v.Progress*100),
		strings.Join(days, "  "),
	)
	return card.Render(body)
}
