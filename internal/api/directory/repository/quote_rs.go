package directoryRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

type QuoteDB struct {
	ID          sql.NullString `db:"id"`
	BusinessID  sql.NullString `db:"business_id"`
	Name        sql.NullString `db:"name"`
	Phone       sql.NullString `db:"phone"`
	Description sql.NullString `db:"description"`
	TradeSlug   sql.NullString `db:"trade_slug"`
	City        sql.NullString `db:"city"`
	Status      sql.NullString `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *quotesRepository) CreateQuote(ctx context.Context, quote entity.QuoteRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          quote.ID,
		"business_id": quote.BusinessID,
		"name":        quote.Name,
		"phone":       quote.Phone,
		"description": quote.Description,
		"trade_slug":  quote.TradeSlug,
		"city":        quote.City,
		"status":      quote.Status,
		"created_at":  quote.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateQuote, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateQuote")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating quote request")
		return err
	}

	return nil
}

func (r *quotesRepository) GetQuotesByBusiness(ctx context.Context, businessID string, limit, offset int) ([]entity.QuoteRequest, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []QuoteDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountQuotesByBusiness, map[string]interface{}{"business_id": businessID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountQuotesByBusiness named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountQuotesByBusiness execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"business_id": businessID,
		"limit":       limit,
		"offset":      offset,
	}

	query, args, err := sqlx.Named(queryGetQuotesByBusiness, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuotesByBusiness named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetQuotesByBusiness execution err")
		return nil, 0, err
	}

	quotes := make([]entity.QuoteRequest, 0, len(rows))
	for _, row := range rows {
		quotes = append(quotes, r.makeQuote(row))
	}

	return quotes, total, nil
}

func (r *quotesRepository) makeQuote(row QuoteDB) entity.QuoteRequest {
	return entity.QuoteRequest{
		ID:          row.ID.String,
		BusinessID:  row.BusinessID.String,
		Name:        row.Name.String,
		Phone:       row.Phone.String,
		Description: row.Description.String,
		TradeSlug:   row.TradeSlug.String,
		City:        row.City.String,
		Status:      row.Status.String,
		CreatedAt:   row.CreatedAt,
	}
}
