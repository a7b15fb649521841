package directoryRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Businesses: &businessesRepository{q: sqlExecutor, log: r.log},
		Photos:     &photosRepository{q: sqlExecutor, log: r.log},
		Quotes:     &quotesRepository{q: sqlExecutor, log: r.log},
		Bookings:   &bookingsRepository{q: sqlExecutor, log: r.log},
		Reviews:    &reviewsRepository{q: sqlExecutor, log: r.log},
		Favorites:  &favoritesRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Businesses interface {
		CreateBusiness(ctx context.Context, business entity.Business) error
		GetBusinessByID(ctx context.Context, id string) (entity.Business, error)
		GetBusinessesByTradeCity(ctx context.Context, tradeSlug, city string, limit, offset int) ([]entity.Business, int, error)
		UpdateBusiness(ctx context.Context, business entity.Business) error
		UpdateRatingAggregates(ctx context.Context, businessID string, rating float64, reviewCount int) error
		DeleteBusiness(ctx context.Context, id string) error
	}

	Photos interface {
		CreatePhoto(ctx context.Context, photo entity.BusinessPhoto) error
		GetPhotosByBusiness(ctx context.Context, businessID string) ([]entity.BusinessPhoto, error)
		DeletePhotosByBusiness(ctx context.Context, businessID string) error
	}

	Quotes interface {
		CreateQuote(ctx context.Context, quote entity.QuoteRequest) error
		GetQuotesByBusiness(ctx context.Context, businessID string, limit, offset int) ([]entity.QuoteRequest, int, error)
	}

	Bookings interface {
		CreateBooking(ctx context.Context, booking entity.Booking) error
		GetBookingByID(ctx context.Context, id string) (entity.Booking, error)
		GetBookingsByBusiness(ctx context.Context, businessID string, limit, offset int) ([]entity.Booking, int, error)
		UpdateBookingStatus(ctx context.Context, id, status string) error
	}

	Reviews interface {
		CreateReview(ctx context.Context, review entity.Review) error
		GetReviewByID(ctx context.Context, id string) (entity.Review, error)
		GetReviewsByBusiness(ctx context.Context, businessID string, limit, offset int) ([]entity.Review, int, error)
		GetRatingAggregates(ctx context.Context, businessID string) (float64, int, error)
		HasUserReviewed(ctx context.Context, businessID, author string) (bool, error)
		DeleteReview(ctx context.Context, id string) error
	}

	Favorites interface {
		CreateFavorite(ctx context.Context, fav entity.Favorite) error
		DeleteFavorite(ctx context.Context, userID, businessID string) error
		GetFavoriteBusinesses(ctx context.Context, userID string) ([]entity.Business, error)
		IsFavorite(ctx context.Context, userID, businessID string) (bool, error)
	}

	Commit   func() error
	Rollback func() error
}

type businessesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type photosRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type quotesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type bookingsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type reviewsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type favoritesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
