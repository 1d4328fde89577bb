package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

type SymbolHandler struct {
	svc *service.SymbolService
}

func NewSymbolHandler(svc *service.SymbolService) *SymbolHandler {
	return &SymbolHandler{svc: svc}
}

// List godoc
// @Summary List symbols
// @Tags symbols
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Free-text search"
// @Param limit query int false "Page size (max 500, default 200)"
// @Success 200 {object} model.SymbolListResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/symbols [get]
func (h *SymbolHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			limit = parsed
		}
	}

	symbols, err := h.svc.List(c.Request.Context(), c.Query("category"), c.Query("search"), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SymbolListResponse{Success: true, Symbols: symbols})
}

func (h *SymbolHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		writeError(c, fmt.Errorf("%w: not found", service.ErrNotFound))
		return
	}

	symbol, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SymbolResponse{Success: true, Symbol: *symbol})
}
