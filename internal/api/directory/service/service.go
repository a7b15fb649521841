package directoryService

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	directoryDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory"
	directoryRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory/repository"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/redis"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/s3"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/utils"
)

type IDirectoryService interface {
	GetListings(ctx context.Context, tradeSlug, citySlug string, page, limit int) (*directoryDomain.ListingResponse, error)
	GetCatalog(ctx context.Context) *directoryDomain.CatalogResponse
	GetNearestCity(ctx context.Context, lat, lon float64) (*directoryDomain.NearestCityResponse, error)

	CreateBusiness(ctx context.Context, ownerID string, req directoryDomain.CreateBusinessRequest) (*directoryDomain.BusinessResponse, error)
	GetBusiness(ctx context.Context, id string) (*directoryDomain.BusinessResponse, error)
	UpdateBusiness(ctx context.Context, userID, id string, req directoryDomain.UpdateBusinessRequest) (*directoryDomain.BusinessResponse, error)
	DeleteBusiness(ctx context.Context, userID, id string) error
	UploadPhoto(ctx context.Context, userID, businessID string, file *multipart.FileHeader, caption string) (*directoryDomain.PhotoResponse, error)

	CreateQuote(ctx context.Context, businessID string, req directoryDomain.CreateQuoteRequest) (*directoryDomain.QuoteResponse, error)
	GetQuotes(ctx context.Context, userID, businessID string, page, limit int) (*directoryDomain.QuoteListResponse, error)

	CreateBooking(ctx context.Context, businessID string, req directoryDomain.CreateBookingRequest) (*directoryDomain.BookingResponse, error)
	GetBookings(ctx context.Context, userID, businessID string, page, limit int) (*directoryDomain.BookingListResponse, error)
	UpdateBookingStatus(ctx context.Context, userID, bookingID, status string) (*directoryDomain.BookingResponse, error)

	CreateReview(ctx context.Context, author, businessID string, req directoryDomain.CreateReviewRequest) (*directoryDomain.ReviewResponse, error)
	GetReviews(ctx context.Context, businessID string, page, limit int) (*directoryDomain.ReviewListResponse, error)
	DeleteReview(ctx context.Context, userID, businessID, reviewID string) error

	AddFavorite(ctx context.Context, userID, businessID string) error
	RemoveFavorite(ctx context.Context, userID, businessID string) error
	GetFavorites(ctx context.Context, userID string) (*directoryDomain.FavoriteListResponse, error)
}

type directoryService struct {
	log           *logrus.Logger
	directoryRepo directoryRepository.Repository
	redis         redis.IRedis
	s3            s3.ItfS3
	utils         utils.IUtils
}

func NewDirectoryService(
	log *logrus.Logger,
	directoryRepo directoryRepository.Repository,
	redisClient redis.IRedis,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IDirectoryService {
	return &directoryService{
		log:           log,
		directoryRepo: directoryRepo,
		redis:         redisClient,
		s3:            s3Client,
		utils:         utils,
	}
}

func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}
