package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/apocalypse-study/backend/internal/model"
)

const (
	chatLoadLimit        = 200
	legacyHistoryLimit   = 50
	anonymousLegacyOwner = "anonymous"
)

// ChatRepo covers both message persistence variants: the authenticated table
// keyed by an integer owner with a foreign key to users, and the legacy table
// keyed by free text with no constraint.
type ChatRepo interface {
	InsertChatMessage(ctx context.Context, userID int64, userMessage, aiResponse string, stepOfFaith *string) (int64, error)
	ListChatMessages(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error)
	InsertLegacyChatMessage(ctx context.Context, ownerID, userMessage, aiResponse string) (int64, error)
	ListLegacyChatMessages(ctx context.Context, ownerID string, limit int) ([]model.LegacyChatMessage, error)
	CountChatMessages(ctx context.Context) (int, error)
}

type ChatService struct {
	repo ChatRepo
}

func NewChatService(repo ChatRepo) *ChatService {
	return &ChatService{repo: repo}
}

func (s *ChatService) Save(ctx context.Context, userID int64, req model.ChatSaveRequest) (int64, error) {
	userMessage := firstNonEmpty(req.UserMessage, req.Message)
	aiResponse := firstNonEmpty(req.AIResponse, req.Response)

	if userMessage == "" || aiResponse == "" {
		return 0, fmt.Errorf("%w: user_message/ai_response (or message/response) required", ErrInvalidInput)
	}

	return s.repo.InsertChatMessage(ctx, userID, userMessage, aiResponse, req.StepOfFaith)
}

func (s *ChatService) Load(ctx context.Context, userID int64) ([]model.ChatMessage, error) {
	return s.repo.ListChatMessages(ctx, userID, chatLoadLimit)
}

// LegacySave is the degraded-mode write path. Identity precedence: resolved
// user when the caller's token happened to be valid, then the caller-supplied
// userId, then the anonymous sentinel. No ownership is enforced.
func (s *ChatService) LegacySave(ctx context.Context, resolvedUserID *int64, req model.LegacyChatSaveRequest) (int64, error) {
	userMessage := firstNonEmpty(req.UserMessage, req.Message)
	aiResponse := firstNonEmpty(req.AIResponse, req.Response)

	if userMessage == "" || aiResponse == "" {
		return 0, fmt.Errorf("%w: user_message/ai_response (or message/response) required", ErrInvalidInput)
	}

	owner := legacyOwner(resolvedUserID, stringifyUserID(req.UserID))
	return s.repo.InsertLegacyChatMessage(ctx, owner, userMessage, aiResponse)
}

func (s *ChatService) LegacyHistory(ctx context.Context, resolvedUserID *int64, queryUserID string) ([]model.LegacyChatMessage, error) {
	owner := legacyOwner(resolvedUserID, strings.TrimSpace(queryUserID))
	return s.repo.ListLegacyChatMessages(ctx, owner, legacyHistoryLimit)
}

func (s *ChatService) CountMessages(ctx context.Context) (int, error) {
	return s.repo.CountChatMessages(ctx)
}

func legacyOwner(resolvedUserID *int64, fallback string) string {
	if resolvedUserID != nil {
		return strconv.FormatInt(*resolvedUserID, 10)
	}
	if fallback != "" {
		return fallback
	}
	return anonymousLegacyOwner
}

// stringifyUserID normalizes the untyped legacy userId field, which arrives
// as a JSON string or number depending on the caller.
func stringifyUserID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}
