package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/wellfit/internal/models"
)

func TestValidateGoals(t *testing.T) {
	tests := []struct {
		name      string
		goals     models.Goals
		wantIssue IssueType
	}{
		{"valid full set", models.Goals{models.HabitWater: 8, models.HabitSleep: 7, models.HabitWorkout: 1}, ""},
		{"valid partial set", models.Goals{models.HabitWorkout: 3}, ""},
		{"zero water", models.Goals{models.HabitWater: 0}, IssueGoalNotPositive},
		{"negative workout", models.Goals{models.HabitWorkout: -2}, IssueGoalNotPositive},
		{"unknown habit", models.Goals{models.HabitKind("steps"): 10}, IssueUnknownHabit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateGoals(tt.goals)
			if tt.wantIssue == "" {
				if res.HasIssues() {
					t.Fatalf("unexpected issues: %s", res.FormatReport())
				}
				return
			}
			if !res.HasIssues() || res.Issues[0].Type != tt.wantIssue {
				t.Fatalf("expected %s, got %+v", tt.wantIssue, res.Issues)
			}
		})
	}
}

func TestResultErrWrapsGoalSentinel(t *testing.T) {
	res := ValidateGoals(models.Goals{models.HabitWater: 0})
	if err := res.Err(); !errors.Is(err, models.ErrGoalNotPositive) {
		t.Errorf("Err() = %v, want wrapping ErrGoalNotPositive", err)
	}

	clean := ValidateGoals(models.Goals{models.HabitWater: 2})
	if err := clean.Err(); err != nil {
		t.Errorf("Err() on clean result = %v", err)
	}
}

func TestParseGoalValue(t *testing.T) {
	tests := map[string]int{
		"8":    8,
		" 12 ": 12,
		"0":    0,
		"-1":   -1,
		"abc":  0,
		"7.5":  0,
		"":     0,
	}
	for in, want := range tests {
		if got := ParseGoalValue(in); got != want {
			t.Errorf("ParseGoalValue(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestGoalsFromFields(t *testing.T) {
	goals, res := GoalsFromFields(map[string]string{
		"water":   "10",
		"sleep":   "",
		"workout": "2",
	})
	if res.HasIssues() {
		t.Fatalf("unexpected issues: %s", res.FormatReport())
	}
	if len(goals) != 2 || goals[models.HabitWater] != 10 || goals[models.HabitWorkout] != 2 {
		t.Errorf("unexpected goals: %v", goals)
	}

	_, res = GoalsFromFields(map[string]string{"water": "lots"})
	if !res.HasIssues() || res.Issues[0].Type != IssueGoalNotPositive {
		t.Errorf("expected non-numeric input to be rejected, got %+v", res.Issues)
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
		want  []IssueType
	}{
		{"valid", models.Credentials{Email: "a@b.co", Password: "pw"}, nil},
		{"empty both", models.Credentials{}, []IssueType{IssueEmptyEmail, IssueEmptyPassword}},
		{"bad email", models.Credentials{Email: "nope", Password: "pw"}, []IssueType{IssueInvalidEmail}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateCredentials(tt.creds)
			if len(res.Issues) != len(tt.want) {
				t.Fatalf("got %d issues, want %d: %+v", len(res.Issues), len(tt.want), res.Issues)
			}
			for i, want := range tt.want {
				if res.Issues[i].Type != want {
					t.Errorf("issue %d = %s, want %s", i, res.Issues[i].Type, want)
				}
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	res := ValidateGoals(models.Goals{models.HabitSleep: 0})
	report := res.FormatReport()
	if !strings.Contains(report, "sleep goal must be at least 1") {
		t.Errorf("FormatReport() = %q", report)
	}

	var empty Result
	if empty.FormatReport() != "No issues detected." {
		t.Errorf("FormatReport() on empty = %q", empty.FormatReport())
	}
}
