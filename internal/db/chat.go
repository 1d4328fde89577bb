package db

import (
	"context"

	"github.com/apocalypse-study/backend/internal/model"
)

func (db *Postgres) InsertChatMessage(ctx context.Context, userID int64, userMessage, aiResponse string, stepOfFaith *string) (int64, error) {
	query := `
		INSERT INTO chat_messages (user_id, user_message, ai_response, step_of_faith, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, userID, userMessage, aiResponse, stepOfFaith).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) ListChatMessages(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	query := `
		SELECT id, user_id, user_message, ai_response, step_of_faith, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.UserMessage, &m.AIResponse, &m.StepOfFaith, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.ChatMessage{}
	}
	return list, nil
}

func (db *Postgres) InsertLegacyChatMessage(ctx context.Context, ownerID, userMessage, aiResponse string) (int64, error) {
	query := `
		INSERT INTO legacy_chat_messages (user_id, user_message, ai_response, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, ownerID, userMessage, aiResponse).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) ListLegacyChatMessages(ctx context.Context, ownerID string, limit int) ([]model.LegacyChatMessage, error) {
	query := `
		SELECT id, user_id, user_message, ai_response, created_at
		FROM legacy_chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := db.Pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.LegacyChatMessage
	for rows.Next() {
		var m model.LegacyChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.UserMessage, &m.AIResponse, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.LegacyChatMessage{}
	}
	return list, nil
}

func (db *Postgres) CountChatMessages(ctx context.Context) (int, error) {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*)::int FROM chat_messages`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
