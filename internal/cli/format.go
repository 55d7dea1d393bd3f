package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/tracker"
)

const barWidth = 20

// ProgressBar renders p (0..1) as a fixed-width text bar.
func ProgressBar(p float64) string {
	filled := int(p*barWidth + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// FormatHabit renders one habit's week. todayIdx < 0 hides the today column marker.
func FormatHabit(v tracker.HabitView, todayIdx int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (goal %d)\n", v.Kind.Title(), v.Goal)

	var labels, values []string
	for i, e := range v.Series {
		label := models.DayLabels[i]
		if i == todayIdx {
			label = "*" + label
		}
		labels = append(labels, fmt.Sprintf("%5s", label))
		values = append(values, fmt.Sprintf("%5d", e.Value))
	}
	fmt.Fprintf(&b, "  %s\n", strings.Join(labels, ""))
	fmt.Fprintf(&b, "  %s\n", strings.Join(values, ""))
	if todayIdx >= 0 {
		fmt.Fprintf(&b, "  today %d/%d %s %3.0f%%\n", v.Today, v.Goal, ProgressBar(v.Progress), v.Progress*100)
	}
	return b.String()
}

func FormatGoals(goals models.Goals) string {
	var b strings.Builder
	for _, kind := range models.AllHabitKinds {
		fmt.Fprintf(&b, "%-14s %d\n", kind.Title()+":", goals.Get(kind))
	}
	return b.String()
}
