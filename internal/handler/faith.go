package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

type FaithHandler struct {
	svc *service.FaithService
}

func NewFaithHandler(svc *service.FaithService) *FaithHandler {
	return &FaithHandler{svc: svc}
}

func (h *FaithHandler) List(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	steps, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FaithStepListResponse{Success: true, Steps: steps})
}

func (h *FaithHandler) Create(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	var req model.FaithStepCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	step, err := h.svc.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FaithStepResponse{Success: true, Step: *step})
}

func (h *FaithHandler) Update(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	stepID, err := parseID(c.Param("id"))
	if err != nil {
		writeError(c, fmt.Errorf("%w: faith step not found", service.ErrNotFound))
		return
	}

	var req model.FaithStepUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	step, err := h.svc.SetCompletion(c.Request.Context(), user.ID, stepID, req.Completed)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FaithStepResponse{Success: true, Step: *step})
}

func (h *FaithHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	stepID, err := parseID(c.Param("id"))
	if err != nil {
		writeError(c, fmt.Errorf("%w: faith step not found", service.ErrNotFound))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user.ID, stepID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FaithStepDeleteResponse{Success: true, Message: "Faith step deleted"})
}

func (h *FaithHandler) Stats(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FaithStatsResponse{Success: true, Stats: *stats})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
