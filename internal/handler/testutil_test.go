package handler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/apocalypse-study/backend/internal/config"
	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

type fakeSession struct {
	userID    int64
	expiresAt time.Time
}

type fakeStore struct {
	users    map[string]*model.User
	byID     map[int64]*model.User
	sessions map[string]fakeSession
	messages []model.ChatMessage
	legacy   []model.LegacyChatMessage
	steps    []fakeFaithStep
	symbols  []model.Symbol
	nextID   int64
}

type fakeFaithStep struct {
	userID int64
	step   model.FaithStep
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]*model.User{},
		byID:     map[int64]*model.User{},
		sessions: map[string]fakeSession{},
	}
}

func (f *fakeStore) next() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateUser(ctx context.Context, email, passwordHash, username string) (*model.User, error) {
	user := &model.User{
		ID:           f.next(),
		Email:        email,
		PasswordHash: passwordHash,
		Username:     username,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}
	f.users[email] = user
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeStore) TouchLastLogin(ctx context.Context, userID int64) error {
	if user, ok := f.byID[userID]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

func (f *fakeStore) InsertSession(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	f.sessions[token] = fakeSession{userID: userID, expiresAt: expiresAt}
	return nil
}

func (f *fakeStore) GetUserBySessionToken(ctx context.Context, token string) (*model.AuthUser, error) {
	session, ok := f.sessions[token]
	if !ok || !session.expiresAt.After(time.Now()) {
		return nil, pgx.ErrNoRows
	}
	user, ok := f.byID[session.userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &model.AuthUser{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
		IsActive:  user.IsActive,
	}, nil
}

func (f *fakeStore) DeleteSessionByToken(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeStore) InsertChatMessage(ctx context.Context, userID int64, userMessage, aiResponse string, stepOfFaith *string) (int64, error) {
	message := model.ChatMessage{
		ID:          f.next(),
		UserID:      userID,
		UserMessage: userMessage,
		AIResponse:  aiResponse,
		StepOfFaith: stepOfFaith,
		CreatedAt:   time.Now(),
	}
	f.messages = append(f.messages, message)
	return message.ID, nil
}

func (f *fakeStore) ListChatMessages(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	list := []model.ChatMessage{}
	for _, m := range f.messages {
		if m.UserID == userID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (f *fakeStore) InsertLegacyChatMessage(ctx context.Context, ownerID, userMessage, aiResponse string) (int64, error) {
	message := model.LegacyChatMessage{
		ID:          f.next(),
		UserID:      ownerID,
		UserMessage: userMessage,
		AIResponse:  aiResponse,
		CreatedAt:   time.Now(),
	}
	f.legacy = append(f.legacy, message)
	return message.ID, nil
}

func (f *fakeStore) ListLegacyChatMessages(ctx context.Context, ownerID string, limit int) ([]model.LegacyChatMessage, error) {
	list := []model.LegacyChatMessage{}
	for _, m := range f.legacy {
		if m.UserID == ownerID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (f *fakeStore) CountChatMessages(ctx context.Context) (int, error) {
	return len(f.messages), nil
}

func (f *fakeStore) ListFaithSteps(ctx context.Context, userID int64, limit int) ([]model.FaithStep, error) {
	list := []model.FaithStep{}
	for _, s := range f.steps {
		if s.userID == userID {
			list = append(list, s.step)
		}
	}
	return list, nil
}

func (f *fakeStore) InsertFaithStep(ctx context.Context, userID int64, title string, passage, meditation *string, step int, source string) (*model.FaithStep, error) {
	created := model.FaithStep{
		ID:         f.next(),
		Title:      title,
		Passage:    passage,
		Meditation: meditation,
		Step:       step,
		Source:     source,
		CreatedAt:  time.Now(),
	}
	f.steps = append(f.steps, fakeFaithStep{userID: userID, step: created})
	return &created, nil
}

func (f *fakeStore) SetFaithStepCompletion(ctx context.Context, userID, stepID int64, completed bool) (*model.FaithStep, error) {
	for i := range f.steps {
		if f.steps[i].step.ID == stepID && f.steps[i].userID == userID {
			f.steps[i].step.Completed = completed
			if completed {
				now := time.Now()
				f.steps[i].step.CompletedAt = &now
			} else {
				f.steps[i].step.CompletedAt = nil
			}
			return &f.steps[i].step, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeStore) DeleteFaithStep(ctx context.Context, userID, stepID int64) (bool, error) {
	for i := range f.steps {
		if f.steps[i].step.ID == stepID && f.steps[i].userID == userID {
			f.steps = append(f.steps[:i], f.steps[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) GetFaithStats(ctx context.Context, userID int64) (int, int, int, error) {
	total, completed := 0, 0
	for _, s := range f.steps {
		if s.userID != userID {
			continue
		}
		total++
		if s.step.Completed {
			completed++
		}
	}
	return total, completed, 0, nil
}

func (f *fakeStore) ListSymbols(ctx context.Context, category, search string, limit int) ([]model.Symbol, error) {
	list := []model.Symbol{}
	for _, s := range f.symbols {
		if category != "" && (s.Category == nil || *s.Category != category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(search)) {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

func (f *fakeStore) GetSymbol(ctx context.Context, id int64) (*model.Symbol, error) {
	for _, s := range f.symbols {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// newTestRouter wires the full route surface against an in-memory store.
func newTestRouter(t *testing.T) (*gin.Engine, *fakeStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	authService, err := service.NewAuthService(store, config.AuthConfig{SessionTTL: "168h", BcryptCost: "4"})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	chatService := service.NewChatService(store)
	faithService := service.NewFaithService(store)
	symbolService := service.NewSymbolService(store)

	authHandler := NewAuthHandler(authService)
	chatHandler := NewChatHandler(chatService)
	faithHandler := NewFaithHandler(faithService)
	symbolHandler := NewSymbolHandler(symbolService)

	r := gin.New()
	r.Use(RequestIDMiddleware())

	requireAuth := AuthMiddleware(authService)
	optionalAuth := OptionalAuthMiddleware(authService)

	r.POST("/api/auth/signup", authHandler.Signup)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/auth/me", requireAuth, authHandler.Me)
	r.POST("/api/auth/logout", requireAuth, authHandler.Logout)

	r.POST("/api/chat-save", requireAuth, chatHandler.Save)
	r.GET("/api/chat-load", requireAuth, chatHandler.Load)
	r.POST("/save-chat", optionalAuth, chatHandler.LegacySave)
	r.GET("/get-chat-history", optionalAuth, chatHandler.LegacyHistory)

	r.GET("/api/symbols", symbolHandler.List)
	r.GET("/api/symbols/:id", symbolHandler.Get)

	faith := r.Group("/api/faith-steps", requireAuth)
	faith.GET("", faithHandler.List)
	faith.POST("", faithHandler.Create)
	faith.GET("/stats", faithHandler.Stats)
	faith.PUT("/:id", faithHandler.Update)
	faith.DELETE("/:id", faithHandler.Delete)

	return r, store
}
