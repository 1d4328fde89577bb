package db

import "context"

// EnsureSchema creates every table the backend touches. Statements are
// idempotent so this runs on every boot.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			username TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_login TIMESTAMPTZ,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS user_sessions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			session_token TEXT NOT NULL UNIQUE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS user_sessions_user_id_idx ON user_sessions(user_id)`,
		`
		CREATE TABLE IF NOT EXISTS chat_messages (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			user_message TEXT NOT NULL,
			ai_response TEXT NOT NULL,
			step_of_faith TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS chat_messages_user_created_idx ON chat_messages(user_id, created_at DESC)`,
		`
		CREATE TABLE IF NOT EXISTS legacy_chat_messages (
			id BIGSERIAL PRIMARY KEY,
			user_id VARCHAR(100) NOT NULL,
			user_message TEXT NOT NULL,
			ai_response TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS legacy_chat_messages_user_idx ON legacy_chat_messages(user_id, created_at DESC)`,
		`
		CREATE TABLE IF NOT EXISTS faith_steps (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			passage TEXT,
			meditation TEXT,
			step INTEGER NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ,
			source TEXT NOT NULL DEFAULT 'custom',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS faith_steps_user_created_idx ON faith_steps(user_id, created_at DESC)`,
		`
		CREATE TABLE IF NOT EXISTS apocalyptic_symbols (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			reference TEXT,
			category TEXT,
			image_url TEXT,
			meaning TEXT,
			context TEXT,
			application TEXT
		)
		`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
