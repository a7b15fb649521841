package blogRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

type CategoryDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *categoriesRepository) GetCategoryByID(ctx context.Context, id string) (entity.BlogCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CategoryDB

	query, args, err := sqlx.Named(queryGetCategoryByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.BlogCategory{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.BlogCategory{}, err
	}

	if len(rows) == 0 {
		return entity.BlogCategory{}, sql.ErrNoRows
	}

	return entity.BlogCategory{
		ID:        rows[0].ID.String,
		Name:      rows[0].Name.String,
		CreatedAt: rows[0].CreatedAt,
	}, nil
}

func (r *categoriesRepository) GetAllCategories(ctx context.Context) ([]entity.BlogCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CategoryDB

	query, args, err := sqlx.Named(queryGetAllCategories, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	categories := make([]entity.BlogCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, entity.BlogCategory{
			ID:        row.ID.String,
			Name:      row.Name.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return categories, nil
}
