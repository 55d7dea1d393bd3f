package models

import (
	"errors"
	"testing"
)

func TestDefaultGoals(t *testing.T) {
	g := DefaultGoals()
	if g[HabitWater] != 8 || g[HabitSleep] != 7 || g[HabitWorkout] != 1 {
		t.Errorf("unexpected defaults: %v", g)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestGoalsValidate(t *testing.T) {
	tests := []struct {
		name    string
		goals   Goals
		wantErr error
	}{
		{"full set", Goals{HabitWater: 10, HabitSleep: 8, HabitWorkout: 2}, nil},
		{"partial set", Goals{HabitSleep: 6}, nil},
		{"zero water", Goals{HabitWater: 0}, ErrGoalNotPositive},
		{"negative sleep", Goals{HabitSleep: -1}, ErrGoalNotPositive},
		{"unknown kind", Goals{HabitKind("steps"): 1000}, ErrUnknownHabitKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goals.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMergeGoals(t *testing.T) {
	merged := MergeGoals(DefaultGoals(), Goals{HabitSleep: 9})
	if merged[HabitSleep] != 9 {
		t.Errorf("expected sleep 9, got %d", merged[HabitSleep])
	}
	if merged[HabitWater] != 8 || merged[HabitWorkout] != 1 {
		t.Errorf("absent kinds should keep defaults, got %v", merged)
	}

	merged = MergeGoals(DefaultGoals(), Goals{HabitWater: 0, HabitKind("steps"): 5})
	if merged[HabitWater] != 8 {
		t.Errorf("non-positive value must not overwrite, got %d", merged[HabitWater])
	}
	if _, ok := merged[HabitKind("steps")]; ok {
		t.Error("unknown kinds must be ignored")
	}
}

func TestMergeGoalsDoesNotMutateBase(t *testing.T) {
	base := DefaultGoals()
	_ = MergeGoals(base, Goals{HabitWater: 12})
	if base[HabitWater] != 8 {
		t.Errorf("base was mutated: %v", base)
	}
}

func TestGoalsGet(t *testing.T) {
	g := Goals{HabitWater: 3}
	if g.Get(HabitWater) != 3 {
		t.Errorf("expected 3, got %d", g.Get(HabitWater))
	}
	if g.Get(HabitSleep) != 7 {
		t.Errorf("expected default 7, got %d", g.Get(HabitSleep))
	}
}
