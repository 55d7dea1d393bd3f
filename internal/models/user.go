package models

import "time"

// User is a registered account on the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredEntry is a persisted day value for one user's habit.
type StoredEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      HabitKind `json:"kind"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Value     int       `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
