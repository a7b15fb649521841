package triageRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

type OutcomeDB struct {
	ID           sql.NullString `db:"id"`
	SessionID    sql.NullString `db:"session_id"`
	TradeSlug    sql.NullString `db:"trade_slug"`
	City         sql.NullString `db:"city"`
	Route        sql.NullString `db:"route"`
	MessageCount sql.NullInt64  `db:"message_count"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *outcomesRepository) CreateOutcome(ctx context.Context, outcome entity.TriageOutcome) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            outcome.ID,
		"session_id":    outcome.SessionID,
		"trade_slug":    outcome.TradeSlug,
		"city":          outcome.City,
		"route":         outcome.Route,
		"message_count": outcome.MessageCount,
		"created_at":    outcome.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateOutcome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateOutcome")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating triage outcome")
		return err
	}

	return nil
}

func (r *outcomesRepository) GetRecentOutcomes(ctx context.Context, limit, offset int) ([]entity.TriageOutcome, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []OutcomeDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountOutcomes, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountOutcomes named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountOutcomes execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetRecentOutcomes, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentOutcomes named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentOutcomes execution err")
		return nil, 0, err
	}

	outcomes := make([]entity.TriageOutcome, 0, len(rows))
	for _, row := range rows {
		outcomes = append(outcomes, r.makeOutcome(row))
	}

	return outcomes, total, nil
}

func (r *outcomesRepository) makeOutcome(row OutcomeDB) entity.TriageOutcome {
	return entity.TriageOutcome{
		ID:           row.ID.String,
		SessionID:    row.SessionID.String,
		TradeSlug:    row.TradeSlug.String,
		City:         row.City.String,
		Route:        row.Route.String,
		MessageCount: int(row.MessageCount.Int64),
		CreatedAt:    row.CreatedAt,
	}
}
