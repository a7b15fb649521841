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

func (s *directoryService) CreateBooking(ctx context.Context, businessID string, req directoryDomain.CreateBookingRequest) (*directoryDomain.BookingResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil || scheduledAt.Before(time.Now()) {
		return nil, directoryDomain.ErrInvalidSchedule
	}

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, directoryDomain.ErrCreateBooking
	}

	if _, err := repo.Businesses.GetBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBusinessNotFound
		}
		return nil, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, directoryDomain.ErrCreateBooking
	}

	now := time.Now()
	booking := entity.Booking{
		ID:           id,
		BusinessID:   businessID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		ScheduledAt:  scheduledAt,
		Notes:        req.Notes,
		Status:       "pending",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Bookings.CreateBooking(ctx, booking); err != nil {
		return nil, directoryDomain.ErrCreateBooking
	}

	resp := makeBookingResponse(booking)
	return &resp, nil
}

func (s *directoryService) GetBookings(ctx context.Context, userID, businessID string, page, limit int) (*directoryDomain.BookingListResponse, error) {
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

	bookings, total, err := repo.Bookings.GetBookingsByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &directoryDomain.BookingListResponse{
		Bookings: make([]directoryDomain.BookingResponse, 0, len(bookings)),
		Total:    total,
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, makeBookingResponse(b))
	}

	return resp, nil
}

func (s *directoryService) UpdateBookingStatus(ctx context.Context, userID, bookingID, status string) (*directoryDomain.BookingResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	booking, err := repo.Bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBookingNotFound
		}
		return nil, err
	}

	business, err := repo.Businesses.GetBusinessByID(ctx, booking.BusinessID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != userID {
		return nil, directoryDomain.ErrBusinessNotOwned
	}

	if err := repo.Bookings.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()

	resp := makeBookingResponse(booking)
	return &resp, nil
}

func makeBookingResponse(b entity.Booking) directoryDomain.BookingResponse {
	return directoryDomain.BookingResponse{
		ID:           b.ID,
		BusinessID:   b.BusinessID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		ScheduledAt:  b.ScheduledAt,
		Notes:        b.Notes,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}
