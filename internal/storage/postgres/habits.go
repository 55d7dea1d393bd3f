package postgres

import (
	"context"
	"database/sql"
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

func ensureHabit(ctx context.Context, tx *sql.Tx, userID string, kind models.HabitKind) (string, error) {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO habits (id, user_id, type) VALUES ($1, $2, $3) ON CONFLICT (user_id, type) DO NOTHING`,
		uuid.NewString(), userID, string(kind)); err != nil {
		return "", fmt.Errorf("failed to ensure habit %s: %w", kind, err)
	}
	var id string
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM habits WHERE user_id = $1 AND type = $2`, userID, string(kind)).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to load habit %s: %w", kind, err)
	}
	return id, nil
}

func (s *Store) GetEntries(ctx context.Context, userID, startDay, endDay string) ([]models.StoredEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, h.type, e.day, e.value, e.updated_at
		FROM habit_entries e
		JOIN habits h ON h.id = e.habit_id
		WHERE h.user_id = $1 AND e.day >= $2 AND e.day <= $3
		ORDER BY e.day, h.type`, userID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.StoredEntry
	for rows.Next() {
		var e models.StoredEntry
		var kind string
		if err := rows.Scan(&e.ID, &kind, &e.Day, &e.Value, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID
		e.Kind = models.HabitKind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpdateEntry locks the entry row so concurrent updates of the same day serialize.
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

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO habit_entries (id, habit_id, day, value, updated_at)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT (habit_id, day) DO NOTHING`,
		uuid.NewString(), habitID, day, now); err != nil {
		return models.StoredEntry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	entry := models.StoredEntry{UserID: userID, Kind: kind, Day: day}
	if err := tx.QueryRowContext(ctx,
		`SELECT id, value FROM habit_entries WHERE habit_id = $1 AND day = $2 FOR UPDATE`, habitID, day).
		Scan(&entry.ID, &entry.Value); err != nil {
		return models.StoredEntry{}, err
	}

	entry.Value = fn(entry.Value)
	entry.UpdatedAt = now
	if _, err := tx.ExecContext(ctx,
		`UPDATE habit_entries SET value = $1, updated_at = $2 WHERE id = $3`,
		entry.Value, entry.UpdatedAt, entry.ID); err != nil {
		return models.StoredEntry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.StoredEntry{}, err
	}
	return entry, nil
}
