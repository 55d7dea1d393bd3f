package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellfit/internal/models"
)

var (
	accent = lipgloss.Color("205")
	muted  = lipgloss.Color("240")

	// Card accents per habit.
	habitColors = map[models.HabitKind]lipgloss.Color{
		models.HabitWater:   lipgloss.Color("39"),
		models.HabitSleep:   lipgloss.Color("141"),
		models.HabitWorkout: lipgloss.Color("208"),
	}
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(muted)
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	docStyle     = lipgloss.NewStyle().Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
)

func habitColor(kind models.HabitKind) lipgloss.Color {
	if c, ok := habitColors[kind]; ok {
		return c
	}
	return accent
}

// cardFor styles a habit card. The selected card takes the habit's colour
// on its border; the others only on the title.
func cardFor(kind models.HabitKind, selected bool) (card, title lipgloss.Style) {
	title = lipgloss.NewStyle().Foreground(habitColor(kind)).Bold(true)
	card = cardStyle
	if selected {
		card = card.BorderForeground(habitColor(kind)).BorderStyle(lipgloss.ThickBorder())
	}
	return card, title
}

func todayStyle(kind models.HabitKind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(habitColor(kind)).Bold(true).Underline(true)
}
