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

type BusinessDB struct {
	ID               sql.NullString  `db:"id"`
	OwnerID          sql.NullString  `db:"owner_id"`
	Name             sql.NullString  `db:"name"`
	TradeSlug        sql.NullString  `db:"trade_slug"`
	City             sql.NullString  `db:"city"`
	Phone            sql.NullString  `db:"phone"`
	Email            sql.NullString  `db:"email"`
	Description      sql.NullString  `db:"description"`
	Website          sql.NullString  `db:"website"`
	Rating           sql.NullFloat64 `db:"rating"`
	ReviewCount      sql.NullInt64   `db:"review_count"`
	Verified         sql.NullBool    `db:"verified"`
	EmergencyCallout sql.NullBool    `db:"emergency_callout"`
	CalloutFeePence  sql.NullInt64   `db:"callout_fee_pence"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r *businessesRepository) CreateBusiness(ctx context.Context, business entity.Business) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                business.ID,
		"owner_id":          business.OwnerID,
		"name":              business.Name,
		"trade_slug":        business.TradeSlug,
		"city":              business.City,
		"phone":             business.Phone,
		"email":             business.Email,
		"description":       business.Description,
		"website":           business.Website,
		"rating":            business.Rating,
		"review_count":      business.ReviewCount,
		"verified":          business.Verified,
		"emergency_callout": business.EmergencyCallout,
		"callout_fee_pence": business.CalloutFeePence,
		"created_at":        business.CreatedAt,
		"updated_at":        business.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBusiness, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBusiness")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating business")
		return err
	}

	return nil
}

func (r *businessesRepository) GetBusinessByID(ctx context.Context, id string) (entity.Business, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BusinessDB

	query, args, err := sqlx.Named(queryGetBusinessByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBusinessByID named query preparation err")
		return entity.Business{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBusinessByID execution err")
		return entity.Business{}, err
	}

	if len(rows) == 0 {
		return entity.Business{}, sql.ErrNoRows
	}

	return makeBusiness(rows[0]), nil
}

func (r *businessesRepository) GetBusinessesByTradeCity(ctx context.Context, tradeSlug, city string, limit, offset int) ([]entity.Business, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BusinessDB
	var total int

	countKV := map[string]interface{}{
		"trade_slug": tradeSlug,
		"city":       city,
	}

	countQuery, countArgs, err := sqlx.Named(queryCountBusinessesByTradeCity, countKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBusinessesByTradeCity named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBusinessesByTradeCity execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"trade_slug": tradeSlug,
		"city":       city,
		"limit":      limit,
		"offset":     offset,
	}

	query, args, err := sqlx.Named(queryGetBusinessesByTradeCity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBusinessesByTradeCity named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBusinessesByTradeCity execution err")
		return nil, 0, err
	}

	businesses := make([]entity.Business, 0, len(rows))
	for _, row := range rows {
		businesses = append(businesses, makeBusiness(row))
	}

	return businesses, total, nil
}

func (r *businessesRepository) UpdateBusiness(ctx context.Context, business entity.Business) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                business.ID,
		"name":              business.Name,
		"phone":             business.Phone,
		"email":             business.Email,
		"description":       business.Description,
		"website":           business.Website,
		"emergency_callout": business.EmergencyCallout,
		"callout_fee_pence": business.CalloutFeePence,
		"updated_at":        business.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateBusiness, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateBusiness")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating business")
		return err
	}

	return nil
}

func (r *businessesRepository) UpdateRatingAggregates(ctx context.Context, businessID string, rating float64, reviewCount int) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           businessID,
		"rating":       rating,
		"review_count": reviewCount,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateRatingAggregates, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateRatingAggregates")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating rating aggregates")
		return err
	}

	return nil
}

func (r *businessesRepository) DeleteBusiness(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBusiness, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteBusiness")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting business")
		return err
	}

	return nil
}

func makeBusiness(row BusinessDB) entity.Business {
	return entity.Business{
		ID:               row.ID.String,
		OwnerID:          row.OwnerID.String,
		Name:             row.Name.String,
		TradeSlug:        row.TradeSlug.String,
		City:             row.City.String,
		Phone:            row.Phone.String,
		Email:            row.Email.String,
		Description:      row.Description.String,
		Website:          row.Website.String,
		Rating:           row.Rating.Float64,
		ReviewCount:      int(row.ReviewCount.Int64),
		Verified:         row.Verified.Bool,
		EmergencyCallout: row.EmergencyCallout.Bool,
		CalloutFeePence:  int(row.CalloutFeePence.Int64),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

type PhotoDB struct {
	ID         sql.NullString `db:"id"`
	BusinessID sql.NullString `db:"business_id"`
	URL        sql.NullString `db:"url"`
	Caption    sql.NullString `db:"caption"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *photosRepository) CreatePhoto(ctx context.Context, photo entity.BusinessPhoto) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          photo.ID,
		"business_id": photo.BusinessID,
		"url":         photo.URL,
		"caption":     photo.Caption,
		"created_at":  photo.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreatePhoto, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePhoto")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating business photo")
		return err
	}

	return nil
}

func (r *photosRepository) GetPhotosByBusiness(ctx context.Context, businessID string) ([]entity.BusinessPhoto, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []PhotoDB

	query, args, err := sqlx.Named(queryGetPhotosByBusiness, map[string]interface{}{"business_id": businessID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPhotosByBusiness named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPhotosByBusiness execution err")
		return nil, err
	}

	photos := make([]entity.BusinessPhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, entity.BusinessPhoto{
			ID:         row.ID.String,
			BusinessID: row.BusinessID.String,
			URL:        row.URL.String,
			Caption:    row.Caption.String,
			CreatedAt:  row.CreatedAt,
		})
	}

	return photos, nil
}

func (r *photosRepository) DeletePhotosByBusiness(ctx context.Context, businessID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeletePhotosByBusiness, map[string]interface{}{"business_id": businessID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeletePhotosByBusiness")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting business photos")
		return err
	}

	return nil
}
