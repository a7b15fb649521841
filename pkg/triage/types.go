package triage

import (
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Action string

const (
	ActionNone     Action = "none"
	ActionNavigate Action = "navigate"
)

// Step is the conversation phase. It only ever moves forward within a
// session; Reset is the single way back to StepInitial.
type Step string

const (
	StepInitial          Step = "initial"
	StepAwaitingTrade    Step = "awaiting_trade"
	StepAwaitingLocation Step = "awaiting_location"
	StepReadyToNavigate  Step = "ready_to_navigate"
)

type Message struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Action  Action `json:"action,omitempty"`
	Target  string `json:"target,omitempty"`
}

// ConversationState accumulates what the engine has inferred so far.
// DetectedTrade and DetectedCity are monotonic: once set they survive
// turns that fail to mention a trade or city, and are cleared only by
// Reset. History is append-only and never reordered.
type ConversationState struct {
	Step          Step          `json:"step"`
	DetectedTrade *catalog.Trade `json:"detected_trade,omitempty"`
	DetectedCity  string        `json:"detected_city,omitempty"`
	History       []Message     `json:"history"`
}

func NewState() ConversationState {
	return ConversationState{
		Step:    StepInitial,
		History: []Message{},
	}
}

// Reset discards all accumulated state, returning a fresh session.
func Reset() ConversationState {
	return NewState()
}
