package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/wellfit/internal/models"
	"github.com/julianstephens/wellfit/internal/storage"
)

func (s *Store) EnsureHabits(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, kind := range models.AllHabitKinds {
		if _, err := ensureHabit(ctx, tx, userID, kind); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ensureHabit returns the habit id for (userID, kind), creating the row if needed.
func ensureHabit(ctx context.Context, tx *sql.Tx, userID string, kind models.HabitKind) (string, error) {
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO habits (id, user_id, type) VALUES (?, ?, ?)`,
		uuid.NewString(), userID, string(kind)); err != nil {
		return "", fmt.Errorf("failed to ensure habit %s: %w", kind, err)
	}
	var id string
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM habits WHERE user_id = ? AND type = ?`, userID, string(kind)).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to load habit %s: %w", kind, err)
	}
	return id, nil
}

func (s *Store) GetEntries(ctx context.Context, userID, startDay, endDay string) ([]models.StoredEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, h.type, e.day, e.value, e.updated_at
		FROM habit_entries e
		JOIN habits h ON h.id = e.habit_id
		WHERE h.user_id = ? AND e.day >= ? AND e.day <= ?
		ORDER BY e.day, h.type`, userID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.StoredEntry
	for rows.Next() {
		var e models.StoredEntry
		var kind, updatedAt string
		if err := rows.Scan(&e.ID, &kind, &e.Day, &e.Value, &updatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID
		e.Kind = models.HabitKind(kind)
		if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateEntry(ctx context.Context, userID string, kind models.HabitKind, day string, fn storage.UpdateFunc) (models.StoredEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.StoredEntry{}, err
	}
	defer func() { _ = tx.Rollback() }()

	habitID, err := ensureHabit(ctx, tx, userID, kind)
	if err != nil {
		return models.StoredEntry{}, err
	}

	entry := models.StoredEntry{UserID: userID, Kind: kind, Day: day}
	err = tx.QueryRowContext(ctx,
		`SELECT id, value FROM habit_entries WHERE habit_id = ? AND day = ?`, habitID, day).
		Scan(&entry.ID, &entry.Value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		entry.ID = uuid.NewString()
		entry.Value = 0
	case err != nil:
		return models.StoredEntry{}, err
	}

	entry.Value = fn(entry.Value)
	entry.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO habit_entries (id, habit_id, day, value, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (habit_id, day) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		entry.ID, habitID, day, entry.Value, entry.UpdatedAt.Format(time.RFC3339)); err != nil {
		return models.StoredEntry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.StoredEntry{}, err
	}
	return entry, nil
}
