// Package week holds the calendar arithmetic for Monday-based week windows.
//
// All values handled here are date-only: they carry no time of day and live
// in UTC so that adding days never crosses a DST boundary.
package week

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/wellfit/internal/constants"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDirection = errors.New("invalid week direction")
)

// Direction selects the adjacent week.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// ParseDirection accepts "prev", "previous" or "next".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prev", "previous":
		return Previous, nil
	case "next":
		return Next, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// DayIndex maps a date to its position in the week, Monday = 0 .. Sunday = 6.
// The weekday is read in t's own location.
func DayIndex(t time.Time) int {
	return WeekdayIndex(t.Weekday())
}

// WeekdayIndex is DayIndex for a bare weekday.
func WeekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % constants.DaysPerWeek
}

// Date truncates t to its calendar date in t's own location and returns it
// as UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeToMonday returns the Monday of the week containing t.
func NormalizeToMonday(t time.Time) time.Time {
	d := Date(t)
	return d.AddDate(0, 0, -DayIndex(d))
}

// ParseDate parses a YYYY-MM-DD string into a date-only value.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Start returns the ISO date of the Monday of the week containing t.
func Start(t time.Time) string {
	return FormatDate(NormalizeToMonday(t))
}

// ShiftDate moves a date-only value by exactly seven calendar days.
func ShiftDate(t time.Time, dir Direction) time.Time {
	return Date(t).AddDate(0, 0, int(dir)*constants.DaysPerWeek)
}

// ShiftWeek returns the ISO date seven days before or after weekStart.
// Year and month boundaries are handled by calendar arithmetic.
func ShiftWeek(weekStart string, dir Direction) (string, error) {
	if dir != Previous && dir != Next {
		return "", fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}
	d, err := ParseDate(weekStart)
	if err != nil {
		return "", err
	}
	return FormatDate(ShiftDate(d, dir)), nil
}

// Days returns the seven ISO dates of the week starting at weekStart.
func Days(weekStart time.Time) [constants.DaysPerWeek]string {
	var out [constants.DaysPerWeek]string
	start := Date(weekStart)
	for i := range out {
		out[i] = FormatDate(start.AddDate(0, 0, i))
	}
	return out
}

// Contains reports whether day falls inside the week starting at weekStart.
func Contains(weekStart, day time.Time) bool {
	start := Date(weekStart)
	d := Date(day)
	return !d.Before(start) && d.Before(start.AddDate(0, 0, constants.DaysPerWeek))
}
