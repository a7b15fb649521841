package triageService

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	triageDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/triage"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/redis"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/triage"
)

const (
	sessionKeyPrefix = "triage:session:"
	sessionTTL       = 30 * time.Minute
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (s *triageService) ProcessMessage(ctx context.Context, req triageDomain.MessageRequest) (*triageDomain.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sessionID := req.SessionID
	state := triage.NewState()

	if sessionID == "" {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate session ID")
			return nil, err
		}
		sessionID = id
	} else {
		loaded, err := s.loadState(ctx, sessionID)
		if err == nil {
			state = loaded
		} else if !errors.Is(err, redis.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Failed to load triage session, starting fresh")
		}
	}

	next, reply := s.engine.ProcessMessage(req.Text, state)

	if err := s.saveState(ctx, sessionID, next); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to save triage session")
		return nil, triageDomain.ErrSaveSession
	}

	if reply.Action == triage.ActionNavigate {
		if err := s.recordOutcome(ctx, sessionID, next, reply); err != nil {
			// The user still gets their navigation; analytics loss only.
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Failed to record triage outcome")
		}
	}

	resp := &triageDomain.MessageResponse{
		SessionID:    sessionID,
		Reply:        reply,
		Step:         next.Step,
		DetectedCity: next.DetectedCity,
	}
	if next.DetectedTrade != nil {
		resp.DetectedTrade = &triageDomain.TradePayload{
			Slug:        next.DetectedTrade.Slug,
			DisplayName: next.DetectedTrade.DisplayName,
			Icon:        next.DetectedTrade.Icon,
		}
	}
	if reply.Action == triage.ActionNavigate {
		resp.NavigationDelayMS = triage.NavigationDelay(reply).Milliseconds()
	}

	return resp, nil
}

func (s *triageService) Reset(ctx context.Context, sessionID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if sessionID == "" {
		return triageDomain.ErrInvalidSessionID
	}

	if err := s.saveState(ctx, sessionID, triage.Reset()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to reset triage session")
		return triageDomain.ErrSaveSession
	}

	return nil
}

func (s *triageService) GetSession(ctx context.Context, sessionID string) (*triageDomain.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return nil, triageDomain.ErrSessionNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load triage session")
		return nil, err
	}

	resp := &triageDomain.SessionResponse{
		SessionID:    sessionID,
		Step:         state.Step,
		DetectedCity: state.DetectedCity,
		History:      state.History,
	}
	if state.DetectedTrade != nil {
		resp.DetectedTrade = &triageDomain.TradePayload{
			Slug:        state.DetectedTrade.Slug,
			DisplayName: state.DetectedTrade.DisplayName,
			Icon:        state.DetectedTrade.Icon,
		}
	}

	return resp, nil
}

func (s *triageService) GetRecentOutcomes(ctx context.Context, page, limit int) (*triageDomain.OutcomeListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.triageRepo.NewClient(false)
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

	outcomes, total, err := repo.Outcomes.GetRecentOutcomes(ctx, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get triage outcomes")
		return nil, err
	}

	resp := &triageDomain.OutcomeListResponse{
		Outcomes: make([]triageDomain.OutcomeResponse, 0, len(outcomes)),
		Total:    total,
	}
	for _, o := range outcomes {
		resp.Outcomes = append(resp.Outcomes, triageDomain.OutcomeResponse{
			ID:           o.ID,
			SessionID:    o.SessionID,
			TradeSlug:    o.TradeSlug,
			City:         o.City,
			Route:        o.Route,
			MessageCount: o.MessageCount,
			CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}

func (s *triageService) recordOutcome(ctx context.Context, sessionID string, state triage.ConversationState, reply triage.Message) error {
	repo, err := s.triageRepo.NewClient(true)
	if err != nil {
		return err
	}
	defer repo.Rollback()

	outcomeID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	outcome := entity.TriageOutcome{
		ID:           outcomeID,
		SessionID:    sessionID,
		TradeSlug:    state.DetectedTrade.Slug,
		City:         state.DetectedCity,
		Route:        reply.Target,
		MessageCount: len(state.History),
		CreatedAt:    time.Now(),
	}

	if err := repo.Outcomes.CreateOutcome(ctx, outcome); err != nil {
		return triageDomain.ErrRecordOutcome
	}

	return repo.Commit()
}

func (s *triageService) loadState(ctx context.Context, sessionID string) (triage.ConversationState, error) {
	payload, err := s.redis.GetJSON(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return triage.ConversationState{}, err
	}

	var state triage.ConversationState
	if err := json.Unmarshal(payload, &state); err != nil {
		return triage.ConversationState{}, err
	}
	if state.History == nil {
		state.History = []triage.Message{}
	}

	return state, nil
}

func (s *triageService) saveState(ctx context.Context, sessionID string, state triage.ConversationState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.redis.SetJSON(ctx, sessionKeyPrefix+sessionID, payload, sessionTTL)
}
