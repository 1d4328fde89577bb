package main

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/apocalypse-study/backend/internal/config"
	"github.com/apocalypse-study/backend/internal/db"
	"github.com/apocalypse-study/backend/internal/handler"
	"github.com/apocalypse-study/backend/internal/service"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres init failed: %v", err)
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	authService, err := service.NewAuthService(repo, cfg.Auth)
	if err != nil {
		log.Fatalf("auth init failed: %v", err)
	}
	chatService := service.NewChatService(repo)
	faithService := service.NewFaithService(repo)
	symbolService := service.NewSymbolService(repo)

	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	faithHandler := handler.NewFaithHandler(faithService)
	symbolHandler := handler.NewSymbolHandler(symbolService)
	healthHandler := handler.NewHealthHandler(chatService)

	router := gin.Default()
	router.Use(handler.CORSMiddleware(splitOrigins(cfg.CORS.AllowedOrigins), parseBool(cfg.CORS.AllowCredentials, true)))
	router.Use(handler.RequestIDMiddleware())

	requireAuth := handler.AuthMiddleware(authService)
	optionalAuth := handler.OptionalAuthMiddleware(authService)

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/api/check-db", healthHandler.CheckDB)

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.Me)
		auth.POST("/logout", requireAuth, authHandler.Logout)
	}

	router.POST("/api/chat-save", requireAuth, chatHandler.Save)
	router.GET("/api/chat-load", requireAuth, chatHandler.Load)

	// Legacy degraded-mode paths: auth is attempted but never required.
	router.POST("/save-chat", optionalAuth, chatHandler.LegacySave)
	router.GET("/get-chat-history", optionalAuth, chatHandler.LegacyHistory)

	router.GET("/api/symbols", symbolHandler.List)
	router.GET("/api/symbols/:id", symbolHandler.Get)

	faith := router.Group("/api/faith-steps", requireAuth)
	{
		faith.GET("", faithHandler.List)
		faith.POST("", faithHandler.Create)
		faith.GET("/stats", faithHandler.Stats)
		faith.PUT("/:id", faithHandler.Update)
		faith.DELETE("/:id", faithHandler.Delete)
	}

	log.Printf("backend listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func parseBool(value string, fallback bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
