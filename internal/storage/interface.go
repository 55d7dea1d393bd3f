package storage

import (
	"context"
	"errors"

	"github.com/julianstephens/wellfit/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UpdateFunc computes a new day value from the current one (0 when absent).
type UpdateFunc func(current int) int

type Provider interface {
	// Lifecycle
	Init(ctx context.Context) error
	Close() error
	Driver() string

	// Users
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// Habits and entries
	EnsureHabits(ctx context.Context, userID string) error
	// GetEntries returns stored entries for every habit with startDay <= day <= endDay.
	GetEntries(ctx context.Context, userID, startDay, endDay string) ([]models.StoredEntry, error)
	// UpdateEntry atomically applies fn to the value of kind on day and
	// returns the stored result.
	UpdateEntry(ctx context.Context, userID string, kind models.HabitKind, day string, fn UpdateFunc) (models.StoredEntry, error)

	// Goals
	// EnsureGoals inserts defaults for kinds the user has no goal for.
	EnsureGoals(ctx context.Context, userID string, defaults models.Goals) error
	GetGoals(ctx context.Context, userID string) (models.Goals, error)
	SetGoals(ctx context.Context, userID string, goals models.Goals) error
}
