package triageHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	triageService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/triage/service"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/middleware"
)

type TriageHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	triageService triageService.ITriageService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ts triageService.ITriageService,
) *TriageHandler {
	return &TriageHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		triageService: ts,
	}
}

func (h *TriageHandler) Start(srv fiber.Router) {
	triage := srv.Group("/triage")

	triage.Post("/message", h.middleware.NewRateLimiter, h.ProcessMessage)
	triage.Post("/reset", h.middleware.NewRateLimiter, h.ResetSession)
	triage.Get("/session/:id", h.GetSession)

	// Demand analytics, operator-only.
	triage.Get("/outcomes", h.middleware.NewTokenMiddleware, h.GetRecentOutcomes)
}
