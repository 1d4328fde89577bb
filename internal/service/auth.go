package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/apocalypse-study/backend/internal/config"
	"github.com/apocalypse-study/backend/internal/db"
	"github.com/apocalypse-study/backend/internal/model"
)

const sessionTokenBytes = 36

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrMisconfigured = errors.New("auth config invalid")
)

// AuthRepo is the credential and session store surface the auth service needs.
type AuthRepo interface {
	CreateUser(ctx context.Context, email, passwordHash, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	TouchLastLogin(ctx context.Context, userID int64) error
	InsertSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetUserBySessionToken(ctx context.Context, token string) (*model.AuthUser, error)
	DeleteSessionByToken(ctx context.Context, token string) error
}

type AuthService struct {
	repo       AuthRepo
	sessionTTL time.Duration
	bcryptCost int
}

func NewAuthService(repo AuthRepo, cfg config.AuthConfig) (*AuthService, error) {
	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil || sessionTTL <= 0 {
		return nil, fmt.Errorf("%w: invalid SESSION_TTL", ErrMisconfigured)
	}

	bcryptCost, err := strconv.Atoi(cfg.BcryptCost)
	if err != nil || bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: invalid BCRYPT_COST", ErrMisconfigured)
	}

	return &AuthService{
		repo:       repo,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}, nil
}

func (s *AuthService) Signup(ctx context.Context, email, password, username string) (string, time.Time, *model.AuthUser, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || password == "" || username == "" {
		return "", time.Time{}, nil, fmt.Errorf("%w: email, password and username are required", ErrInvalidInput)
	}

	// Advisory pre-check for a friendlier conflict error; the unique
	// constraint on users.email is the real guarantee.
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	if exists {
		return "", time.Time{}, nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", time.Time{}, nil, err
	}

	user, err := s.repo.CreateUser(ctx, email, string(hash), username)
	if err != nil {
		if isUniqueViolation(err) {
			return "", time.Time{}, nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return "", time.Time{}, nil, err
	}

	return s.grantSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, *model.AuthUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", time.Time{}, nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return "", time.Time{}, nil, fmt.Errorf("%w: account not found", ErrNotFound)
		}
		return "", time.Time{}, nil, err
	}

	if !user.IsActive {
		return "", time.Time{}, nil, fmt.Errorf("%w: account disabled", ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, nil, fmt.Errorf("%w: incorrect password", ErrUnauthorized)
	}

	return s.grantSession(ctx, user)
}

// ResolveToken maps an Authorization header value to the owning user. It is
// read-only: session validity is decided entirely by the store lookup, which
// excludes expired rows. is_active is passed through unfiltered — only login
// rejects disabled accounts.
func (s *AuthService) ResolveToken(ctx context.Context, header string) (*model.AuthUser, string, error) {
	token, err := extractBearerToken(header)
	if err != nil {
		return nil, "", err
	}

	user, err := s.repo.GetUserBySessionToken(ctx, token)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, "", fmt.Errorf("%w: invalid or expired session", ErrUnauthorized)
		}
		return nil, "", err
	}

	return user, token, nil
}

// Logout deletes the exact session row. Deleting an already-absent token is
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.repo.DeleteSessionByToken(ctx, token)
}

func (s *AuthService) grantSession(ctx context.Context, user *model.User) (string, time.Time, *model.AuthUser, error) {
	token, expiresAt, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return "", time.Time{}, nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		return "", time.Time{}, nil, err
	}

	now := time.Now()
	return token, expiresAt, &model.AuthUser{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		LastLogin: &now,
		IsActive:  user.IsActive,
	}, nil
}

// issueSession mints an opaque token and persists it with its expiry horizon.
// Store failure propagates to the caller; there are no retries.
func (s *AuthService) issueSession(ctx context.Context, userID int64) (string, time.Time, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	if err := s.repo.InsertSession(ctx, userID, token, expiresAt); err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func extractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("%w: missing token", ErrUnauthorized)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", fmt.Errorf("%w: missing token", ErrUnauthorized)
	}
	return token, nil
}

func newSessionToken() (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
