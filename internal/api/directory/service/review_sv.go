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

// CreateReview inserts the review and recomputes the business's rating
// aggregates in one transaction, so concurrent reviews cannot leave the
// denormalized columns behind the review table.
func (s *directoryService) CreateReview(ctx context.Context, author, businessID string, req directoryDomain.CreateReviewRequest) (*directoryDomain.ReviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, directoryDomain.ErrCreateReview
	}
	defer repo.Rollback()

	business, err := repo.Businesses.GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBusinessNotFound
		}
		return nil, err
	}

	reviewed, err := repo.Reviews.HasUserReviewed(ctx, businessID, author)
	if err != nil {
		return nil, directoryDomain.ErrCreateReview
	}
	if reviewed {
		return nil, directoryDomain.ErrDuplicateReview
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, directoryDomain.ErrCreateReview
	}

	review := entity.Review{
		ID:         id,
		BusinessID: businessID,
		Author:     author,
		Rating:     req.Rating,
		Body:       req.Body,
		CreatedAt:  time.Now(),
	}

	if err := repo.Reviews.CreateReview(ctx, review); err != nil {
		return nil, directoryDomain.ErrCreateReview
	}

	rating, reviewCount, err := repo.Reviews.GetRatingAggregates(ctx, businessID)
	if err != nil {
		return nil, directoryDomain.ErrCreateReview
	}
	if err := repo.Businesses.UpdateRatingAggregates(ctx, businessID, rating, reviewCount); err != nil {
		return nil, directoryDomain.ErrCreateReview
	}

	if err := repo.Commit(); err != nil {
		return nil, directoryDomain.ErrCreateReview
	}

	s.invalidateListings(ctx, business)

	resp := makeReviewResponse(review)
	return &resp, nil
}

func (s *directoryService) GetReviews(ctx context.Context, businessID string, page, limit int) (*directoryDomain.ReviewListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Businesses.GetBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBusinessNotFound
		}
		return nil, err
	}

	_, limit, offset := normalizePage(page, limit)

	reviews, total, err := repo.Reviews.GetReviewsByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &directoryDomain.ReviewListResponse{
		Reviews: make([]directoryDomain.ReviewResponse, 0, len(reviews)),
		Total:   total,
	}
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, makeReviewResponse(r))
	}

	return resp, nil
}

// DeleteReview lets the business owner moderate reviews on their own listing.
// The delete and the aggregate recompute share a transaction, like CreateReview.
func (s *directoryService) DeleteReview(ctx context.Context, userID, businessID, reviewID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return directoryDomain.ErrDeleteReview
	}
	defer repo.Rollback()

	business, err := repo.Businesses.GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directoryDomain.ErrBusinessNotFound
		}
		return err
	}
	if business.OwnerID != userID {
		return directoryDomain.ErrBusinessNotOwned
	}

	review, err := repo.Reviews.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directoryDomain.ErrReviewNotFound
		}
		return directoryDomain.ErrDeleteReview
	}
	if review.BusinessID != businessID {
		return directoryDomain.ErrReviewNotFound
	}

	if err := repo.Reviews.DeleteReview(ctx, reviewID); err != nil {
		return directoryDomain.ErrDeleteReview
	}

	rating, reviewCount, err := repo.Reviews.GetRatingAggregates(ctx, businessID)
	if err != nil {
		return directoryDomain.ErrDeleteReview
	}
	if err := repo.Businesses.UpdateRatingAggregates(ctx, businessID, rating, reviewCount); err != nil {
		return directoryDomain.ErrDeleteReview
	}

	if err := repo.Commit(); err != nil {
		return directoryDomain.ErrDeleteReview
	}

	s.invalidateListings(ctx, business)

	return nil
}

func (s *directoryService) AddFavorite(ctx context.Context, userID, businessID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return directoryDomain.ErrFavoriteOperation
	}

	if _, err := repo.Businesses.GetBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directoryDomain.ErrBusinessNotFound
		}
		return err
	}

	exists, err := repo.Favorites.IsFavorite(ctx, userID, businessID)
	if err != nil {
		return directoryDomain.ErrFavoriteOperation
	}
	if exists {
		return directoryDomain.ErrDuplicateFavorite
	}

	fav := entity.Favorite{
		UserID:     userID,
		BusinessID: businessID,
		CreatedAt:  time.Now(),
	}

	if err := repo.Favorites.CreateFavorite(ctx, fav); err != nil {
		return directoryDomain.ErrFavoriteOperation
	}

	return nil
}

func (s *directoryService) RemoveFavorite(ctx context.Context, userID, businessID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return directoryDomain.ErrFavoriteOperation
	}

	if err := repo.Favorites.DeleteFavorite(ctx, userID, businessID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directoryDomain.ErrFavoriteNotFound
		}
		return directoryDomain.ErrFavoriteOperation
	}

	return nil
}

func (s *directoryService) GetFavorites(ctx context.Context, userID string) (*directoryDomain.FavoriteListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	businesses, err := repo.Favorites.GetFavoriteBusinesses(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &directoryDomain.FavoriteListResponse{
		Businesses: make([]directoryDomain.BusinessResponse, 0, len(businesses)),
	}
	for _, b := range businesses {
		resp.Businesses = append(resp.Businesses, makeBusinessResponse(b, nil))
	}

	return resp, nil
}

func makeReviewResponse(r entity.Review) directoryDomain.ReviewResponse {
	return directoryDomain.ReviewResponse{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		Author:     r.Author,
		Rating:     r.Rating,
		Body:       r.Body,
		CreatedAt:  r.CreatedAt,
	}
}
