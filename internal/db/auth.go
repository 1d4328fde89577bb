package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/apocalypse-study/backend/internal/model"
)

func (db *Postgres) CreateUser(ctx context.Context, email, passwordHash, username string) (*model.User, error) {
	query := `
		INSERT INTO users (email, password_hash, username, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, email, password_hash, username, created_at, last_login, is_active
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email, passwordHash, username).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Username,
		&user.CreatedAt,
		&user.LastLogin,
		&user.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, password_hash, username, created_at, last_login, is_active
		FROM users
		WHERE email = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Username,
		&user.CreatedAt,
		&user.LastLogin,
		&user.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) EmailExists(ctx context.Context, email string) (bool, error) {
	var id int64
	err := db.Pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1 LIMIT 1`, email).Scan(&id)
	if err != nil {
		if IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (db *Postgres) TouchLastLogin(ctx context.Context, userID int64) error {
	_, err := db.Pool.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, userID)
	return err
}

func (db *Postgres) InsertSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO user_sessions (user_id, session_token, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := db.Pool.Exec(ctx, query, userID, token, expiresAt)
	return err
}

// GetUserBySessionToken resolves a session token to its owning user in a
// single query. The expiry predicate lives here so expired rows are simply
// never visible (lazy expiry).
func (db *Postgres) GetUserBySessionToken(ctx context.Context, token string) (*model.AuthUser, error) {
	query := `
		SELECT u.id, u.email, u.username, u.created_at, u.last_login, u.is_active
		FROM user_sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.session_token = $1 AND s.expires_at > NOW()
		LIMIT 1
	`
	var user model.AuthUser
	err := db.Pool.QueryRow(ctx, query, token).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.CreatedAt,
		&user.LastLogin,
		&user.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) DeleteSessionByToken(ctx context.Context, token string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM user_sessions WHERE session_token = $1`, token)
	return err
}

func IsNoRows(err error) bool {
	return err == pgx.ErrNoRows
}
