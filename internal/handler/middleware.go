package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/apocalypse-study/backend/internal/model"
	"github.com/apocalypse-study/backend/internal/service"
)

const (
	authUserKey     = "auth_user"
	sessionTokenKey = "session_token"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// AuthMiddleware resolves the bearer token before any handler logic runs and
// aborts with 401 when resolution fails.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		user, token, err := authService.ResolveToken(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			status := http.StatusUnauthorized
			if !isAuthFailure(err) {
				status = http.StatusInternalServerError
			}
			c.JSON(status, model.ErrorResponse{Success: false, Error: err.Error()})
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// OptionalAuthMiddleware is the degraded-mode variant: it attaches the
// resolved user when the token is valid and swallows every resolution failure.
func OptionalAuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, token, err := authService.ResolveToken(c.Request.Context(), c.GetHeader("Authorization")); err == nil {
			c.Set(authUserKey, user)
			c.Set(sessionTokenKey, token)
		}
		c.Next()
	}
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

func GetSessionToken(c *gin.Context) string {
	if value, ok := c.Get(sessionTokenKey); ok {
		if token, ok := value.(string); ok {
			return token
		}
	}
	return ""
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	allowAll := len(allowedOrigins) == 0
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			_, ok := originMap[origin]
			if allowAll || ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
