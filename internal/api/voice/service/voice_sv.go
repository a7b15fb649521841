package voiceService

import (
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	voiceDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/voicerouter"
)

const maxAudioSize = 10 * 1024 * 1024

var allowedAudioExts = []string{".webm", ".ogg", ".mp3", ".wav", ".m4a"}

func (s *voiceService) Transcribe(ctx context.Context, file *multipart.FileHeader) (*voiceDomain.TranscribeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateAudioFile(file, maxAudioSize, allowedAudioExts); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid audio file")
		return nil, voiceDomain.ErrInvalidAudioFile
	}

	transcript, err := s.transcriber.Transcribe(ctx, file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Transcription failed")
		return nil, voiceDomain.ErrTranscriptionFailed
	}

	return &voiceDomain.TranscribeResponse{Transcript: transcript}, nil
}

func (s *voiceService) Commands() *voiceDomain.CommandListResponse {
	commands := voicerouter.DefaultCommands()

	resp := &voiceDomain.CommandListResponse{
		Commands: make([]voiceDomain.CommandPayload, 0, len(commands)),
	}
	for _, cmd := range commands {
		resp.Commands = append(resp.Commands, voiceDomain.CommandPayload{
			Keyword: cmd.Keyword,
			Route:   cmd.Route,
			Speech:  cmd.Speech,
		})
	}

	return resp
}

func (s *voiceService) Generator() voicerouter.Generator {
	return s.gemini
}

func (s *voiceService) LogResolution(ctx context.Context, sessionID string, res voicerouter.Resolution) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	logID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	cmdLog := entity.VoiceCommandLog{
		ID:         logID,
		SessionID:  sessionID,
		Transcript: res.Transcript,
		Source:     res.Source,
		Keyword:    res.Keyword,
		Route:      res.Route,
		Reply:      res.Reply,
		CreatedAt:  time.Now(),
	}

	if err := repo.Logs.CreateLog(ctx, cmdLog); err != nil {
		return voiceDomain.ErrLogCommand
	}

	return nil
}

func (s *voiceService) GetHistory(ctx context.Context, page, limit int) (*voiceDomain.LogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	logs, total, err := repo.Logs.GetRecentLogs(ctx, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get voice command history")
		return nil, err
	}

	resp := &voiceDomain.LogListResponse{
		Logs:  make([]voiceDomain.LogResponse, 0, len(logs)),
		Total: total,
	}
	for _, l := range logs {
		resp.Logs = append(resp.Logs, voiceDomain.LogResponse{
			ID:         l.ID,
			SessionID:  l.SessionID,
			Transcript: l.Transcript,
			Source:     l.Source,
			Keyword:    l.Keyword,
			Route:      l.Route,
			Reply:      l.Reply,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}
