package models

import (
	"errors"
	"fmt"

	"github.com/julianstephens/wellfit/internal/constants"
)

var ErrGoalNotPositive = errors.New("goal must be at least 1")

// Goals maps each habit to its daily target. Every value is >= 1.
type Goals map[HabitKind]int

// DefaultGoals returns the targets used before the server has stored any.
func DefaultGoals() Goals {
	return Goals{
		HabitWater:   constants.DefaultWaterGoal,
		HabitSleep:   constants.DefaultSleepGoal,
		HabitWorkout: constants.DefaultWorkoutGoal,
	}
}

// Clone returns an independent copy.
func (g Goals) Clone() Goals {
	out := make(Goals, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}

// Get returns the goal for kind, falling back to the default.
func (g Goals) Get(kind HabitKind) int {
	if v, ok := g[kind]; ok && v >= 1 {
		return v
	}
	return DefaultGoals()[kind]
}

// Validate checks every supplied entry. A partial set is valid.
func (g Goals) Validate() error {
	for k, v := range g {
		if !k.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownHabitKind, k)
		}
		if v < 1 {
			return fmt.Errorf("%w: %s = %d", ErrGoalNotPositive, k, v)
		}
	}
	return nil
}

// MergeGoals overlays partial onto base. Unknown kinds and non-positive
// values in partial are ignored so the result keeps the positivity invariant.
func MergeGoals(base, partial Goals) Goals {
	out := base.Clone()
	for k, v := range partial {
		if !k.Valid() || v < 1 {
			continue
		}
		out[k] = v
	}
	return out
}
