package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Save persists a chat exchange for the authenticated user. Both the current
// and the older field names are accepted; normalization happens in the
// service before validation.
func (h *ChatHandler) Save(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	var req model.ChatSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	id, err := h.svc.Save(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ChatSaveResponse{Success: true, ID: id})
}

func (h *ChatHandler) Load(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	messages, err := h.svc.Load(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ChatLoadResponse{Success: true, Messages: messages})
}

// LegacySave is the unauthenticated fallback write path. A valid bearer token
// is used when present; otherwise the caller-supplied identity (or the
// anonymous sentinel) applies.
func (h *ChatHandler) LegacySave(c *gin.Context) {
	var req model.LegacyChatSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	id, err := h.svc.LegacySave(c.Request.Context(), resolvedUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ChatSaveResponse{Success: true, ID: id})
}

func (h *ChatHandler) LegacyHistory(c *gin.Context) {
	messages, err := h.svc.LegacyHistory(c.Request.Context(), resolvedUserID(c), c.Query("userId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LegacyChatHistoryResponse{Success: true, Messages: messages})
}

func resolvedUserID(c *gin.Context) *int64 {
	if user := GetAuthUser(c); user != nil {
		return &user.ID
	}
	return nil
}
