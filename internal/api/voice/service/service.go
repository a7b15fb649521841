package voiceService

import (
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"

	voiceDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice"
	voiceRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice/repository"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/gemini"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/utils"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/voicerouter"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/whisper"
)

type IVoiceService interface {
	Transcribe(ctx context.Context, file *multipart.FileHeader) (*voiceDomain.TranscribeResponse, error)
	Commands() *voiceDomain.CommandListResponse
	Generator() voicerouter.Generator
	LogResolution(ctx context.Context, sessionID string, res voicerouter.Resolution) error
	GetHistory(ctx context.Context, page, limit int) (*voiceDomain.LogListResponse, error)
}

type voiceService struct {
	log         *logrus.Logger
	voiceRepo   voiceRepository.Repository
	gemini      gemini.IGemini
	transcriber whisper.ITranscriber
	utils       utils.IUtils
}

func NewVoiceService(
	log *logrus.Logger,
	voiceRepo voiceRepository.Repository,
	geminiClient gemini.IGemini,
	transcriber whisper.ITranscriber,
	utils utils.IUtils,
) IVoiceService {
	return &voiceService{
		log:         log,
		voiceRepo:   voiceRepo,
		gemini:      geminiClient,
		transcriber: transcriber,
		utils:       utils,
	}
}
