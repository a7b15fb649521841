package blogService

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	blogs "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/blog"
	blogRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/blog/repository"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/s3"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/utils"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, author string, imageFile *multipart.FileHeader) (*blogs.BlogResponse, error)
	GetBlogByID(ctx context.Context, id string) (*blogs.BlogResponse, error)
	GetAllBlogs(ctx context.Context, page, limit int) (*blogs.BlogListResponse, error)
	GetBlogsByCategory(ctx context.Context, category string, page, limit int) (*blogs.BlogListResponse, error)
	GetBlogsByTrade(ctx context.Context, tradeSlug string, page, limit int) (*blogs.BlogListResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, author string, imageFile *multipart.FileHeader) error
	DeleteBlog(ctx context.Context, id, author string) error
	GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error)
}

type blogsService struct {
	log      *logrus.Logger
	blogRepo blogRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogRepo blogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:      log,
		blogRepo: blogRepo,
		s3Client: s3Client,
		utils:    utils,
	}
}
