package sqlite

import (
	"context"

	"github.com/julianstephens/wellfit/internal/models"
)

func (s *Store) EnsureGoals(ctx context.Context, userID string, defaults models.Goals) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for kind, value := range defaults {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO user_goals (user_id, type, goal_value) VALUES (?, ?, ?)`,
			userID, string(kind), value); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) GetGoals(ctx context.Context, userID string) (models.Goals, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, goal_value FROM user_goals WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := models.Goals{}
	for rows.Next() {
		var kind string
		var value int
		if err := rows.Scan(&kind, &value); err != nil {
			return nil, err
		}
		goals[models.HabitKind(kind)] = value
	}
	return goals, rows.Err()
}

func (s *Store) SetGoals(ctx context.Context, userID string, goals models.Goals) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for kind, value := range goals {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_goals (user_id, type, goal_value) VALUES (?, ?, ?)
			ON CONFLICT (user_id, type) DO UPDATE SET goal_value = excluded.goal_value`,
			userID, string(kind), value); err != nil {
			return err
		}
	}
	return tx.Commit()
}
