package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/wellfit/internal/constants"
)

var (
	ErrUnknownHabitKind = errors.New("unknown habit kind")
	ErrUnknownOp        = errors.New("unknown habit operation")
)

// HabitKind is one of the three tracked habits.
type HabitKind string

const (
	HabitWater   HabitKind = "water"
	HabitSleep   HabitKind = "sleep"
	HabitWorkout HabitKind = "workout"
)

// AllHabitKinds lists every kind in display order.
var AllHabitKinds = []HabitKind{HabitWater, HabitSleep, HabitWorkout}

// ParseHabitKind accepts a kind name case-insensitively.
func ParseHabitKind(s string) (HabitKind, error) {
	k := HabitKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownHabitKind, s)
	}
	return k, nil
}

func (k HabitKind) Valid() bool {
	switch k {
	case HabitWater, HabitSleep, HabitWorkout:
		return true
	}
	return false
}

// Title returns the human label used by the CLI and TUI.
func (k HabitKind) Title() string {
	switch k {
	case HabitWater:
		return "Water Intake"
	case HabitSleep:
		return "Sleep Hours"
	case HabitWorkout:
		return "Workout"
	}
	return string(k)
}

// MutationOp is a change applied to a single day's value.
type MutationOp string

const (
	OpIncrement MutationOp = "inc"
	OpDecrement MutationOp = "dec"
	OpSet       MutationOp = "set"
)

func ParseMutationOp(s string) (MutationOp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inc", "increment", "+":
		return OpIncrement, nil
	case "dec", "decrement", "-":
		return OpDecrement, nil
	case "set":
		return OpSet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// HabitEntry is one day's value for one habit.
type HabitEntry struct {
	Day   string `json:"day"` // YYYY-MM-DD format
	Label string `json:"label,omitempty"`
	Value int    `json:"value"`
}

// WeeklySeries holds Monday (index 0) through Sunday (index 6).
type WeeklySeries [constants.DaysPerWeek]HabitEntry

// Values returns the raw values in day order.
func (s WeeklySeries) Values() []int {
	out := make([]int, len(s))
	for i, e := range s {
		out[i] = e.Value
	}
	return out
}

// WeeklyData is the full week window for every habit.
type WeeklyData struct {
	WeekStart string                     `json:"weekStart"`
	Series    map[HabitKind]WeeklySeries `json:"data"`
}

// SeriesFor returns the series for kind, or an all-zero series when absent.
func (w WeeklyData) SeriesFor(kind HabitKind) WeeklySeries {
	if s, ok := w.Series[kind]; ok {
		return s
	}
	start, err := time.Parse(constants.DateFormat, w.WeekStart)
	if err != nil {
		return WeeklySeries{}
	}
	return EmptySeries(start)
}

// DayLabels are the short weekday names, Monday first.
var DayLabels = [constants.DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// EmptySeries builds a zero-valued series starting at weekStart.
func EmptySeries(weekStart time.Time) WeeklySeries {
	var s WeeklySeries
	for i := range s {
		s[i] = HabitEntry{
			Day:   weekStart.AddDate(0, 0, i).Format(constants.DateFormat),
			Label: DayLabels[i],
		}
	}
	return s
}

// NormalizeSeries maps whatever the server sent onto exactly seven slots.
// Entries with a date inside the week are placed by date; entries without a
// usable date fall back to their position. Missing days stay at zero and
// negative values are floored to zero.
func NormalizeSeries(weekStart time.Time, entries []HabitEntry) WeeklySeries {
	s := EmptySeries(weekStart)
	for i, e := range entries {
		idx := -1
		if day, err := time.Parse(constants.DateFormat, e.Day); err == nil {
			d := int(day.Sub(weekStart).Hours() / 24)
			if d >= 0 && d < constants.DaysPerWeek {
				idx = d
			} else {
				continue
			}
		} else if i < constants.DaysPerWeek {
			idx = i
		}
		if idx < 0 {
			continue
		}
		v := e.Value
		if v < 0 {
			v = 0
		}
		s[idx].Value = v
	}
	return s
}
