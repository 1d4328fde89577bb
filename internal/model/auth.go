package model

import "time"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the public projection returned by the session resolver.
// It never carries the password hash.
type AuthUser struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active"`
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Username     string
	CreatedAt    time.Time
	LastLogin    *time.Time
	IsActive     bool
}
