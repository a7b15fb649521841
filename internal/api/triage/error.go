package triage

import "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/response"

var (
	ErrSessionNotFound  = response.NewError(404, "triage session not found")
	ErrSaveSession      = response.NewError(500, "failed to save triage session")
	ErrRecordOutcome    = response.NewError(500, "failed to record triage outcome")
	ErrInvalidSessionID = response.NewError(400, "invalid session id")
)
