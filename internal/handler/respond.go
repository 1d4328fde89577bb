package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

// writeError maps service errors to HTTP statuses. Anything outside the known
// taxonomy is a store failure and surfaces as 500 with its message intact.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	}

	c.JSON(status, model.ErrorResponse{Success: false, Error: err.Error()})
}

func isAuthFailure(err error) bool {
	return errors.Is(err, service.ErrUnauthorized)
}
