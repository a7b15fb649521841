package directoryHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	directoryService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory/service"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/middleware"
)

type DirectoryHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	directoryService directoryService.IDirectoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ds directoryService.IDirectoryService,
) *DirectoryHandler {
	return &DirectoryHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		directoryService: ds,
	}
}

func (h *DirectoryHandler) Start(srv fiber.Router) {
	srv.Get("/listings/:trade/:city", h.GetListings)

	catalog := srv.Group("/catalog")
	catalog.Get("/", h.GetCatalog)
	catalog.Get("/nearest-city", h.GetNearestCity)

	businesses := srv.Group("/businesses")
	businesses.Post("/", h.middleware.NewTokenMiddleware, h.CreateBusiness)
	businesses.Get("/:id", h.GetBusiness)
	businesses.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBusiness)
	businesses.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBusiness)
	businesses.Post("/:id/photos", h.middleware.NewTokenMiddleware, h.UploadPhoto)

	// Public lead forms get rate limited; owner views need a token.
	businesses.Post("/:id/quotes", h.middleware.NewRateLimiter, h.CreateQuote)
	businesses.Get("/:id/quotes", h.middleware.NewTokenMiddleware, h.GetQuotes)
	businesses.Post("/:id/bookings", h.middleware.NewRateLimiter, h.CreateBooking)
	businesses.Get("/:id/bookings", h.middleware.NewTokenMiddleware, h.GetBookings)

	businesses.Post("/:id/reviews", h.middleware.NewTokenMiddleware, h.CreateReview)
	businesses.Get("/:id/reviews", h.GetReviews)
	businesses.Delete("/:id/reviews/:reviewId", h.middleware.NewTokenMiddleware, h.DeleteReview)

	srv.Patch("/bookings/:id/status", h.middleware.NewTokenMiddleware, h.UpdateBookingStatus)

	favorites := srv.Group("/favorites", h.middleware.NewTokenMiddleware)
	favorites.Get("/", h.GetFavorites)
	favorites.Post("/:businessId", h.AddFavorite)
	favorites.Delete("/:businessId", h.RemoveFavorite)
}
