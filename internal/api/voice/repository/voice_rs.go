package voiceRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

type LogDB struct {
	ID         sql.NullString `db:"id"`
	SessionID  sql.NullString `db:"session_id"`
	Transcript sql.NullString `db:"transcript"`
	Source     sql.NullString `db:"source"`
	Keyword    sql.NullString `db:"keyword"`
	Route      sql.NullString `db:"route"`
	Reply      sql.NullString `db:"reply"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *logsRepository) CreateLog(ctx context.Context, cmdLog entity.VoiceCommandLog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         cmdLog.ID,
		"session_id": cmdLog.SessionID,
		"transcript": cmdLog.Transcript,
		"source":     cmdLog.Source,
		"keyword":    cmdLog.Keyword,
		"route":      cmdLog.Route,
		"reply":      cmdLog.Reply,
		"created_at": cmdLog.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateLog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateLog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when logging voice command")
		return err
	}

	return nil
}

func (r *logsRepository) GetRecentLogs(ctx context.Context, limit, offset int) ([]entity.VoiceCommandLog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []LogDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountLogs, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountLogs named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountLogs execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetRecentLogs, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentLogs named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentLogs execution err")
		return nil, 0, err
	}

	logs := make([]entity.VoiceCommandLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, entity.VoiceCommandLog{
			ID:         row.ID.String,
			SessionID:  row.SessionID.String,
			Transcript: row.Transcript.String,
			Source:     row.Source.String,
			Keyword:    row.Keyword.String,
			Route:      row.Route.String,
			Reply:      row.Reply.String,
			CreatedAt:  row.CreatedAt,
		})
	}

	return logs, total, nil
}
