package model

import "time"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type RootResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type CheckDBResponse struct {
	Success       bool `json:"success"`
	TotalMessages int  `json:"totalMessages"`
}

type AuthSessionResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      AuthUser  `json:"user"`
}

type AuthMeResponse struct {
	Success bool     `json:"success"`
	User    AuthUser `json:"user"`
}

type AuthLogoutResponse struct {
	Success bool `json:"success"`
}

type ChatSaveResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type ChatLoadResponse struct {
	Success  bool          `json:"success"`
	Messages []ChatMessage `json:"messages"`
}

type LegacyChatHistoryResponse struct {
	Success  bool                `json:"success"`
	Messages []LegacyChatMessage `json:"messages"`
}

type SymbolListResponse struct {
	Success bool     `json:"success"`
	Symbols []Symbol `json:"symbols"`
}

type SymbolResponse struct {
	Success bool   `json:"success"`
	Symbol  Symbol `json:"symbol"`
}

type FaithStepListResponse struct {
	Success bool        `json:"success"`
	Steps   []FaithStep `json:"steps"`
}

type FaithStepResponse struct {
	Success bool      `json:"success"`
	Step    FaithStep `json:"step"`
}

type FaithStepDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type FaithStatsResponse struct {
	Success bool       `json:"success"`
	Stats   FaithStats `json:"stats"`
}
