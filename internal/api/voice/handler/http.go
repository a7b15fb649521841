package voiceHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	voiceService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice/service"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/middleware"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/utils"
)

type VoiceHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	voiceService voiceService.IVoiceService
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	vs voiceService.IVoiceService,
	utils utils.IUtils,
) *VoiceHandler {
	return &VoiceHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		voiceService: vs,
		utils:        utils,
	}
}

func (h *VoiceHandler) Start(srv fiber.Router) {
	voice := srv.Group("/voice")

	voice.Get("/commands", h.GetCommands)
	voice.Post("/transcribe", h.middleware.NewRateLimiter, h.Transcribe)
	voice.Get("/history", h.middleware.NewTokenMiddleware, h.GetHistory)

	voice.Use("/session", h.RequireUpgrade)
	voice.Get("/session", websocket.New(h.Session))
}

func (h *VoiceHandler) RequireUpgrade(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}
