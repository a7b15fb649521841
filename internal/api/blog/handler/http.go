package blogHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	blogService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/blog/service"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/middleware"
)

type BlogsHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	blogService blogService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		blogService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Post("/", h.middleware.NewTokenMiddleware, h.CreateBlog)

	blogs.Get("", h.GetAllBlogs)
	blogs.Get("/categories", h.GetAllCategories)
	blogs.Get("/category/:id", h.GetBlogsByCategory)
	blogs.Get("/trade/:slug", h.GetBlogsByTrade)
	blogs.Get("/:id", h.GetBlogByID)

	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlog)
	blogs.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBlog)
}
