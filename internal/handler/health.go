package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Message: "Apocalypse backend up",
		Endpoints: []string{
			"POST /api/auth/signup",
			"POST /api/auth/login",
			"POST /api/auth/logout",
			"GET  /api/auth/me",
			"POST /api/chat-save",
			"GET  /api/chat-load",
			"GET  /api/symbols",
			"GET  /api/faith-steps",
			"POST /save-chat    (legacy)",
			"GET  /get-chat-history (legacy)",
		},
	})
}

type HealthHandler struct {
	chat *service.ChatService
}

func NewHealthHandler(chat *service.ChatService) *HealthHandler {
	return &HealthHandler{chat: chat}
}

func (h *HealthHandler) CheckDB(c *gin.Context) {
	count, err := h.chat.CountMessages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.CheckDBResponse{Success: true, TotalMessages: count})
}
