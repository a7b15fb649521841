package triageService

import (
	"context"

	"github.com/sirupsen/logrus"

	triageDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/triage"
	triageRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/triage/repository"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/redis"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/triage"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/utils"
)

type ITriageService interface {
	ProcessMessage(ctx context.Context, req triageDomain.MessageRequest) (*triageDomain.MessageResponse, error)
	Reset(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (*triageDomain.SessionResponse, error)
	GetRecentOutcomes(ctx context.Context, page, limit int) (*triageDomain.OutcomeListResponse, error)
}

type triageService struct {
	log        *logrus.Logger
	engine     *triage.Engine
	triageRepo triageRepository.Repository
	redis      redis.IRedis
	utils      utils.IUtils
}

func NewTriageService(
	log *logrus.Logger,
	engine *triage.Engine,
	triageRepo triageRepository.Repository,
	redisClient redis.IRedis,
	utils utils.IUtils,
) ITriageService {
	return &triageService{
		log:        log,
		engine:     engine,
		triageRepo: triageRepo,
		redis:      redisClient,
		utils:      utils,
	}
}
