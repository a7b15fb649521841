package blogService

import (
	"database/sql"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	blogs "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/blog"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

const imagePrefix = "blog-images"

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, author string, imageFile *multipart.FileHeader) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.TradeSlug != "" {
		if _, ok := catalog.TradeBySlug(req.TradeSlug); !ok {
			return nil, blogs.ErrUnknownTrade
		}
	}

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	if _, err := repo.Categories.GetCategoryByID(ctx, req.BlogCategory); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, blogs.ErrCategoryNotFound
		}
		return nil, err
	}

	var imageURL string
	if imageFile != nil {
		if err := s.utils.ValidateImageFile(imageFile); err != nil {
			return nil, blogs.ErrInvalidFileType
		}

		uploadedURL, err := s.s3Client.UploadFile(imagePrefix, imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload blog image")
			return nil, blogs.ErrFailedToUpload
		}
		imageURL = uploadedURL
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate blog ID")
		return nil, err
	}

	now := time.Now()
	blog := entity.Blog{
		ID:           blogID,
		Title:        req.Title,
		Body:         req.Body,
		ImageURL:     imageURL,
		Author:       author,
		BlogCategory: req.BlogCategory,
		TradeSlug:    req.TradeSlug,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		return nil, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		return nil, blogs.ErrCreateBlog
	}

	resp := s.makeBlogResponse(ctx, blog)
	return &resp, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, blogs.ErrBlogNotFound
		}
		return nil, err
	}

	resp := s.makeBlogResponse(ctx, blog)
	return &resp, nil
}

func (s *blogsService) GetAllBlogs(ctx context.Context, page, limit int) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	_, limit, offset := normalizePage(page, limit)

	blogList, total, err := repo.Blogs.GetAllBlogs(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.makeBlogListResponse(ctx, blogList, total), nil
}

func (s *blogsService) GetBlogsByCategory(ctx context.Context, category string, page, limit int) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Categories.GetCategoryByID(ctx, category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, blogs.ErrCategoryNotFound
		}
		return nil, err
	}

	_, limit, offset := normalizePage(page, limit)

	blogList, total, err := repo.Blogs.GetBlogsByCategory(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.makeBlogListResponse(ctx, blogList, total), nil
}

func (s *blogsService) GetBlogsByTrade(ctx context.Context, tradeSlug string, page, limit int) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, ok := catalog.TradeBySlug(tradeSlug); !ok {
		return nil, blogs.ErrUnknownTrade
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	_, limit, offset := normalizePage(page, limit)

	blogList, total, err := repo.Blogs.GetBlogsByTrade(ctx, tradeSlug, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.makeBlogListResponse(ctx, blogList, total), nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, author string, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return blogs.ErrBlogNotFound
		}
		return err
	}

	if existing.Author != author {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_author":  existing.Author,
			"request_user": author,
		}).Warn("User is not the author of the blog")
		return blogs.ErrBlogNotOwned
	}

	if req.BlogCategory != "" && req.BlogCategory != existing.BlogCategory {
		if _, err := repo.Categories.GetCategoryByID(ctx, req.BlogCategory); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return blogs.ErrCategoryNotFound
			}
			return err
		}
		existing.BlogCategory = req.BlogCategory
	}
	if req.TradeSlug != "" {
		if _, ok := catalog.TradeBySlug(req.TradeSlug); !ok {
			return blogs.ErrUnknownTrade
		}
		existing.TradeSlug = req.TradeSlug
	}
	if req.Title != "" {
		existing.Title = req.Title
	}
	if req.Body != "" {
		existing.Body = req.Body
	}

	if imageFile != nil {
		if err := s.utils.ValidateImageFile(imageFile); err != nil {
			return blogs.ErrInvalidFileType
		}

		uploadedURL, err := s.s3Client.UploadFile(imagePrefix, imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload blog image")
			return blogs.ErrFailedToUpload
		}

		s.removeImage(requestID, existing.ImageURL)
		existing.ImageURL = uploadedURL
	} else if req.ImageURL == "remove" {
		s.removeImage(requestID, existing.ImageURL)
		existing.ImageURL = ""
	}

	existing.UpdatedAt = time.Now()

	if err := repo.Blogs.UpdateBlog(ctx, existing); err != nil {
		return blogs.ErrUpdateBlog
	}

	return repo.Commit()
}

func (s *blogsService) DeleteBlog(ctx context.Context, id, author string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return blogs.ErrBlogNotFound
		}
		return err
	}

	if existing.Author != author {
		return blogs.ErrBlogNotOwned
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		return blogs.ErrDeleteBlog
	}

	s.removeImage(requestID, existing.ImageURL)

	return repo.Commit()
}

func (s *blogsService) GetAllCategories(ctx context.Context) (*blogs.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Categories.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	resp := &blogs.CategoryListResponse{
		Categories: make([]blogs.CategoryResponse, 0, len(categories)),
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, blogs.CategoryResponse{
			ID:        category.ID,
			Name:      category.Name,
			CreatedAt: category.CreatedAt,
		})
	}

	return resp, nil
}

func normalizePage(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

func (s *blogsService) makeBlogListResponse(ctx context.Context, blogList []entity.Blog, total int) *blogs.BlogListResponse {
	resp := &blogs.BlogListResponse{
		Blogs: make([]blogs.BlogResponse, 0, len(blogList)),
		Total: total,
	}
	for _, blog := range blogList {
		resp.Blogs = append(resp.Blogs, s.makeBlogResponse(ctx, blog))
	}
	return resp
}

func (s *blogsService) makeBlogResponse(ctx context.Context, blog entity.Blog) blogs.BlogResponse {
	imageURL := blog.ImageURL
	if imageURL != "" {
		presigned, err := s.s3Client.PresignUrl(imageURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"id":         blog.ID,
				"error":      err.Error(),
			}).Warn("Failed to presign blog image URL")
		} else {
			imageURL = presigned
		}
	}

	return blogs.BlogResponse{
		ID:           blog.ID,
		Title:        blog.Title,
		Body:         blog.Body,
		ImageURL:     imageURL,
		Author:       blog.Author,
		BlogCategory: blog.BlogCategory,
		TradeSlug:    blog.TradeSlug,
		CreatedAt:    blog.CreatedAt,
		UpdatedAt:    blog.UpdatedAt,
	}
}

func (s *blogsService) removeImage(requestID, imageURL string) {
	if imageURL == "" {
		return
	}
	if err := s.s3Client.DeleteFile(imageURL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_url":  imageURL,
			"error":      err.Error(),
		}).Warn("Failed to delete blog image")
	}
}
