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

type ReviewDB struct {
	ID         sql.NullString `db:"id"`
	BusinessID sql.NullString `db:"business_id"`
	Author     sql.NullString `db:"author"`
	Rating     sql.NullInt64  `db:"rating"`
	Body       sql.NullString `db:"body"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *reviewsRepository) CreateReview(ctx context.Context, review entity.Review) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          review.ID,
		"business_id": review.BusinessID,
		"author":      review.Author,
		"rating":      review.Rating,
		"body":        review.Body,
		"created_at":  review.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateReview")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating review")
		return err
	}

	return nil
}

func (r *reviewsRepository) GetReviewByID(ctx context.Context, id string) (entity.Review, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ReviewDB

	query, args, err := sqlx.Named(queryGetReviewByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewByID named query preparation err")
		return entity.Review{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewByID execution err")
		return entity.Review{}, err
	}
	if len(rows) == 0 {
		return entity.Review{}, sql.ErrNoRows
	}

	row := rows[0]
	return entity.Review{
		ID:         row.ID.String,
		BusinessID: row.BusinessID.String,
		Author:     row.Author.String,
		Rating:     int(row.Rating.Int64),
		Body:       row.Body.String,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (r *reviewsRepository) DeleteReview(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteReview, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteReview")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting review")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *reviewsRepository) GetReviewsByBusiness(ctx context.Context, businessID string, limit, offset int) ([]entity.Review, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ReviewDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountReviewsByBusiness, map[string]interface{}{"business_id": businessID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountReviewsByBusiness named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountReviewsByBusiness execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"business_id": businessID,
		"limit":       limit,
		"offset":      offset,
	}

	query, args, err := sqlx.Named(queryGetReviewsByBusiness, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewsByBusiness named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewsByBusiness execution err")
		return nil, 0, err
	}

	reviews := make([]entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, entity.Review{
			ID:         row.ID.String,
			BusinessID: row.BusinessID.String,
			Author:     row.Author.String,
			Rating:     int(row.Rating.Int64),
			Body:       row.Body.String,
			CreatedAt:  row.CreatedAt,
		})
	}

	return reviews, total, nil
}

func (r *reviewsRepository) GetRatingAggregates(ctx context.Context, businessID string) (float64, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rating float64
	var reviewCount int

	query, args, err := sqlx.Named(queryGetRatingAggregates, map[string]interface{}{"business_id": businessID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRatingAggregates named query preparation err")
		return 0, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&rating, &reviewCount); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRatingAggregates execution err")
		return 0, 0, err
	}

	return rating, reviewCount, nil
}

func (r *reviewsRepository) HasUserReviewed(ctx context.Context, businessID, author string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	argsKV := map[string]interface{}{
		"business_id": businessID,
		"author":      author,
	}

	query, args, err := sqlx.Named(queryHasUserReviewed, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("HasUserReviewed named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("HasUserReviewed execution err")
		return false, err
	}

	return count > 0, nil
}

func (r *favoritesRepository) CreateFavorite(ctx context.Context, fav entity.Favorite) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":     fav.UserID,
		"business_id": fav.BusinessID,
		"created_at":  fav.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateFavorite, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateFavorite")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating favorite")
		return err
	}

	return nil
}

func (r *favoritesRepository) DeleteFavorite(ctx context.Context, userID, businessID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":     userID,
		"business_id": businessID,
	}

	query, args, err := sqlx.Named(queryDeleteFavorite, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteFavorite")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting favorite")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *favoritesRepository) GetFavoriteBusinesses(ctx context.Context, userID string) ([]entity.Business, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BusinessDB

	query, args, err := sqlx.Named(queryGetFavoriteBusinesses, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFavoriteBusinesses named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFavoriteBusinesses execution err")
		return nil, err
	}

	businesses := make([]entity.Business, 0, len(rows))
	for _, row := range rows {
		businesses = append(businesses, makeBusiness(row))
	}

	return businesses, nil
}

func (r *favoritesRepository) IsFavorite(ctx context.Context, userID, businessID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"business_id": businessID,
	}

	query, args, err := sqlx.Named(queryIsFavorite, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IsFavorite named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IsFavorite execution err")
		return false, err
	}

	return count > 0, nil
}
