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

type BookingDB struct {
	ID           sql.NullString `db:"id"`
	BusinessID   sql.NullString `db:"business_id"`
	CustomerName sql.NullString `db:"customer_name"`
	Phone        sql.NullString `db:"phone"`
	ScheduledAt  time.Time      `db:"scheduled_at"`
	Notes        sql.NullString `db:"notes"`
	Status       sql.NullString `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *bookingsRepository) CreateBooking(ctx context.Context, booking entity.Booking) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            booking.ID,
		"business_id":   booking.BusinessID,
		"customer_name": booking.CustomerName,
		"phone":         booking.Phone,
		"scheduled_at":  booking.ScheduledAt,
		"notes":         booking.Notes,
		"status":        booking.Status,
		"created_at":    booking.CreatedAt,
		"updated_at":    booking.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBooking, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBooking")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating booking")
		return err
	}

	return nil
}

func (r *bookingsRepository) GetBookingByID(ctx context.Context, id string) (entity.Booking, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BookingDB

	query, args, err := sqlx.Named(queryGetBookingByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBookingByID named query preparation err")
		return entity.Booking{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBookingByID execution err")
		return entity.Booking{}, err
	}

	if len(rows) == 0 {
		return entity.Booking{}, sql.ErrNoRows
	}

	return r.makeBooking(rows[0]), nil
}

func (r *bookingsRepository) GetBookingsByBusiness(ctx context.Context, businessID string, limit, offset int) ([]entity.Booking, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BookingDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountBookingsByBusiness, map[string]interface{}{"business_id": businessID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBookingsByBusiness named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBookingsByBusiness execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"business_id": businessID,
		"limit":       limit,
		"offset":      offset,
	}

	query, args, err := sqlx.Named(queryGetBookingsByBusiness, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBookingsByBusiness named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBookingsByBusiness execution err")
		return nil, 0, err
	}

	bookings := make([]entity.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, r.makeBooking(row))
	}

	return bookings, total, nil
}

func (r *bookingsRepository) UpdateBookingStatus(ctx context.Context, id, status string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBookingStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateBookingStatus")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating booking status")
		return err
	}

	return nil
}

func (r *bookingsRepository) makeBooking(row BookingDB) entity.Booking {
	return entity.Booking{
		ID:           row.ID.String,
		BusinessID:   row.BusinessID.String,
		CustomerName: row.CustomerName.String,
		Phone:        row.Phone.String,
		ScheduledAt:  row.ScheduledAt,
		Notes:        row.Notes.String,
		Status:       row.Status.String,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
