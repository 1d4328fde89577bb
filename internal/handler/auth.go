package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Email, password and username"
// @Success 200 {object} model.AuthSessionResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	token, expiresAt, user, err := h.svc.Signup(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthSessionResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.AuthSessionResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", service.ErrInvalidInput))
		return
	}

	token, expiresAt, user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthSessionResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AuthMeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		writeError(c, fmt.Errorf("%w: missing token", service.ErrUnauthorized))
		return
	}

	c.JSON(http.StatusOK, model.AuthMeResponse{
		Success: true,
		User:    *user,
	})
}

// Logout godoc
// @Summary Logout
// @Description Deletes the caller's session row; other sessions stay valid.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AuthLogoutResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), GetSessionToken(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthLogoutResponse{Success: true})
}
