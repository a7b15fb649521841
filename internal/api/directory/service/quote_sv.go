package directoryService

import (
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	directoryDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

func (s *directoryService) CreateQuote(ctx context.Context, businessID string, req directoryDomain.CreateQuoteRequest) (*directoryDomain.QuoteResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, directoryDomain.ErrCreateQuote
	}

	business, err := repo.Businesses.GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBusinessNotFound
		}
		return nil, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, directoryDomain.ErrCreateQuote
	}

	quote := entity.QuoteRequest{
		ID:          id,
		BusinessID:  businessID,
		Name:        req.Name,
		Phone:       req.Phone,
		Description: req.Description,
		TradeSlug:   business.TradeSlug,
		City:        business.City,
		Status:      "new",
		CreatedAt:   time.Now(),
	}

	if err := repo.Quotes.CreateQuote(ctx, quote); err != nil {
		return nil, directoryDomain.ErrCreateQuote
	}

	resp := makeQuoteResponse(quote)
	return &resp, nil
}

func (s *directoryService) GetQuotes(ctx context.Context, userID, businessID string, page, limit int) (*directoryDomain.QuoteListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	business, err := repo.Businesses.GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBusinessNotFound
		}
		return nil, err
	}
	if business.OwnerID != userID {
		return nil, directoryDomain.ErrBusinessNotOwned
	}

	_, limit, offset := normalizePage(page, limit)

	quotes, total, err := repo.Quotes.GetQuotesByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &directoryDomain.QuoteListResponse{
		Quotes: make([]directoryDomain.QuoteResponse, 0, len(quotes)),
		Total:  total,
	}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, makeQuoteResponse(q))
	}

	return resp, nil
}

func makeQuoteResponse(q entity.QuoteRequest) directoryDomain.QuoteResponse {
	return directoryDomain.QuoteResponse{
		ID:          q.ID,
		BusinessID:  q.BusinessID,
		Name:        q.Name,
		Phone:       q.Phone,
		Description: q.Description,
		TradeSlug:   q.TradeSlug,
		City:        q.City,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt,
	}
}
