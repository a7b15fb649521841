package voice

import "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/response"

var (
	ErrInvalidAudioFile    = response.NewError(400, "invalid audio file")
	ErrTranscriptionFailed = response.NewError(502, "failed to transcribe audio")
	ErrLogCommand          = response.NewError(500, "failed to log voice command")
)
