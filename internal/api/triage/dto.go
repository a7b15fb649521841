package triage

import (
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/triage"
)

type MessageRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
	Text      string `json:"text" validate:"required,min=1,max=500"`
}

type ResetRequest struct {
	SessionID string `json:"session_id" validate:"required,max=64"`
}

type TradePayload struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
}

type MessageResponse struct {
	SessionID         string         `json:"session_id"`
	Reply             triage.Message `json:"reply"`
	Step              triage.Step    `json:"step"`
	DetectedTrade     *TradePayload  `json:"detected_trade,omitempty"`
	DetectedCity      string         `json:"detected_city,omitempty"`
	NavigationDelayMS int64          `json:"navigation_delay_ms,omitempty"`
}

type SessionResponse struct {
	SessionID     string           `json:"session_id"`
	Step          triage.Step      `json:"step"`
	DetectedTrade *TradePayload    `json:"detected_trade,omitempty"`
	DetectedCity  string           `json:"detected_city,omitempty"`
	History       []triage.Message `json:"history"`
}

type OutcomeResponse struct {
	ID           string `json:"id"`
	SessionID    string `json:"session_id"`
	TradeSlug    string `json:"trade_slug"`
	City         string `json:"city"`
	Route        string `json:"route"`
	MessageCount int    `json:"message_count"`
	CreatedAt    string `json:"created_at"`
}

type OutcomeListResponse struct {
	Outcomes []OutcomeResponse `json:"outcomes"`
	Total    int               `json:"total"`
}
