package week

import (
	"errors"
	"testing"
	"time"
)

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		wd   time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Wednesday, 2},
		{time.Thursday, 3},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}

	for _, tt := range tests {
		t.Run(tt.wd.String(), func(t *testing.T) {
			if got := WeekdayIndex(tt.wd); got != tt.want {
				t.Errorf("WeekdayIndex(%s) = %d, want %d", tt.wd, got, tt.want)
			}
		})
	}
}

func TestDayIndexOverDates(t *testing.T) {
	// 2023-01-02 is a Monday; walk four years across leap day and year ends.
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4*366; i++ {
		d := start.AddDate(0, 0, i)
		got := DayIndex(d)
		if got != i%7 {
			t.Fatalf("DayIndex(%s) = %d, want %d", FormatDate(d), got, i%7)
		}
		if next := DayIndex(d.AddDate(0, 0, 7)); next != got {
			t.Fatalf("DayIndex not periodic at %s: %d vs %d", FormatDate(d), got, next)
		}
	}

	if got := DayIndex(time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC)); got != 6 {
		t.Errorf("DayIndex(2025-06-08) = %d, want 6", got)
	}
}

func TestNormalizeToMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), "2025-06-02"},
		{"wednesday", time.Date(2025, 6, 4, 23, 59, 0, 0, time.UTC), "2025-06-02"},
		{"sunday goes back six days", time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), "2025-06-02"},
		{"crosses year boundary", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), "2024-12-30"},
		{"crosses month boundary", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "2025-02-24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeToMonday(tt.in)
			if got.Weekday() != time.Monday {
				t.Fatalf("expected Monday, got %s", got.Weekday())
			}
			if FormatDate(got) != tt.want {
				t.Errorf("NormalizeToMonday(%v) = %s, want %s", tt.in, FormatDate(got), tt.want)
			}
			if d := tt.in.Sub(got); d < 0 || d >= 7*24*time.Hour {
				t.Errorf("input not within six days of result: %v", d)
			}
		})
	}
}

func TestNormalizeToMondayUsesLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2025-06-08 23:00 UTC is already Monday 2025-06-09 in UTC+10.
	in := time.Date(2025, 6, 9, 9, 0, 0, 0, loc)
	if got := Start(in); got != "2025-06-09" {
		t.Errorf("Start() = %s, want 2025-06-09", got)
	}
}

func TestShiftWeek(t *testing.T) {
	tests := []struct {
		start string
		dir   Direction
		want  string
	}{
		{"2025-06-02", Next, "2025-06-09"},
		{"2025-06-02", Previous, "2025-05-26"},
		{"2025-01-05", Previous, "2024-12-29"},
		{"2024-12-30", Next, "2025-01-06"},
		{"2024-02-26", Next, "2024-03-04"},
		{"2025-03-31", Next, "2025-04-07"},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.dir.String(), func(t *testing.T) {
			got, err := ShiftWeek(tt.start, tt.dir)
			if err != nil {
				t.Fatalf("ShiftWeek() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShiftWeek(%s, %s) = %s, want %s", tt.start, tt.dir, got, tt.want)
			}
		})
	}
}

func TestShiftWeekRoundTrip(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		iso := FormatDate(start.AddDate(0, 0, i))
		next, err := ShiftWeek(iso, Next)
		if err != nil {
			t.Fatalf("ShiftWeek(%s) error = %v", iso, err)
		}
		back, err := ShiftWeek(next, Previous)
		if err != nil {
			t.Fatalf("ShiftWeek(%s) error = %v", next, err)
		}
		if back != iso {
			t.Fatalf("round trip of %s returned %s", iso, back)
		}
	}
}

func TestShiftWeekInvalid(t *testing.T) {
	if _, err := ShiftWeek("2025-13-01", Next); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ShiftWeek("June 2", Next); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ShiftWeek("2025-06-02", Direction(0)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"prev": Previous, "previous": Previous, "NEXT": Next} {
		got, err := ParseDirection(in)
		if err != nil {
			t.Fatalf("ParseDirection(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestDaysAndContains(t *testing.T) {
	monday, _ := ParseDate("2025-06-02")
	days := Days(monday)
	if days[0] != "2025-06-02" || days[6] != "2025-06-08" {
		t.Errorf("unexpected days: %v", days)
	}

	sunday, _ := ParseDate("2025-06-08")
	nextMonday, _ := ParseDate("2025-06-09")
	if !Contains(monday, sunday) {
		t.Error("expected Sunday to be in the week")
	}
	if Contains(monday, nextMonday) {
		t.Error("expected next Monday to be outside the week")
	}
}
