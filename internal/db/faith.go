package db

import (
	"context"

	"github.com/apocalypse-study/backend/internal/model"
)

const faithStepColumns = `id, title, passage, meditation, step, completed, completed_at, created_at, source`

func (db *Postgres) ListFaithSteps(ctx context.Context, userID int64, limit int) ([]model.FaithStep, error) {
	query := `
		SELECT ` + faithStepColumns + `
		FROM faith_steps
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.FaithStep
	for rows.Next() {
		var s model.FaithStep
		if err := rows.Scan(&s.ID, &s.Title, &s.Passage, &s.Meditation, &s.Step, &s.Completed, &s.CompletedAt, &s.CreatedAt, &s.Source); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.FaithStep{}
	}
	return list, nil
}

func (db *Postgres) InsertFaithStep(ctx context.Context, userID int64, title string, passage, meditation *string, step int, source string) (*model.FaithStep, error) {
	query := `
		INSERT INTO faith_steps (user_id, title, passage, meditation, step, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + faithStepColumns
	var s model.FaithStep
	err := db.Pool.QueryRow(ctx, query, userID, title, passage, meditation, step, source).Scan(
		&s.ID, &s.Title, &s.Passage, &s.Meditation, &s.Step, &s.Completed, &s.CompletedAt, &s.CreatedAt, &s.Source,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetFaithStepCompletion applies completion in one conditional statement so the
// ownership check and the mutation cannot drift apart. No matching row means
// the id is unknown or owned by someone else; callers treat both the same.
func (db *Postgres) SetFaithStepCompletion(ctx context.Context, userID, stepID int64, completed bool) (*model.FaithStep, error) {
	query := `
		UPDATE faith_steps
		SET completed = $1,
		    completed_at = CASE WHEN $1 THEN NOW() ELSE NULL END
		WHERE id = $2 AND user_id = $3
		RETURNING ` + faithStepColumns
	var s model.FaithStep
	err := db.Pool.QueryRow(ctx, query, completed, stepID, userID).Scan(
		&s.ID, &s.Title, &s.Passage, &s.Meditation, &s.Step, &s.Completed, &s.CompletedAt, &s.CreatedAt, &s.Source,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (db *Postgres) DeleteFaithStep(ctx context.Context, userID, stepID int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM faith_steps WHERE id = $1 AND user_id = $2`, stepID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetFaithStats aggregates totals and the count of distinct activity days in
// the trailing 7-day window in one statement.
func (db *Postgres) GetFaithStats(ctx context.Context, userID int64) (total, completed, recentDays int, err error) {
	query := `
		SELECT
			COUNT(*)::int,
			COUNT(*) FILTER (WHERE completed)::int,
			COUNT(DISTINCT created_at::date) FILTER (WHERE created_at >= CURRENT_DATE - INTERVAL '7 days')::int
		FROM faith_steps
		WHERE user_id = $1
	`
	err = db.Pool.QueryRow(ctx, query, userID).Scan(&total, &completed, &recentDays)
	return total, completed, recentDays, err
}
