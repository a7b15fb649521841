package directoryService

import (
	"database/sql"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	directoryDomain "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

const photoPrefix = "business-photos"

func (s *directoryService) CreateBusiness(ctx context.Context, ownerID string, req directoryDomain.CreateBusinessRequest) (*directoryDomain.BusinessResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if _, ok := catalog.TradeBySlug(req.TradeSlug); !ok {
		return nil, directoryDomain.ErrUnknownTrade
	}
	city, ok := catalog.CityByName(req.City)
	if !ok {
		return nil, directoryDomain.ErrUnknownCity
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate business ID")
		return nil, directoryDomain.ErrCreateBusiness
	}

	now := time.Now()
	business := entity.Business{
		ID:               id,
		OwnerID:          ownerID,
		Name:             req.Name,
		TradeSlug:        req.TradeSlug,
		City:             city.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Description:      req.Description,
		Website:          req.Website,
		EmergencyCallout: req.EmergencyCallout,
		CalloutFeePence:  req.CalloutFeePence,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, directoryDomain.ErrCreateBusiness
	}

	if err := repo.Businesses.CreateBusiness(ctx, business); err != nil {
		return nil, directoryDomain.ErrCreateBusiness
	}

	s.invalidateListings(ctx, business)

	resp := makeBusinessResponse(business, nil)
	return &resp, nil
}

func (s *directoryService) GetBusiness(ctx context.Context, id string) (*directoryDomain.BusinessResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	business, err := repo.Businesses.GetBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBusinessNotFound
		}
		return nil, err
	}

	photos, err := repo.Photos.GetPhotosByBusiness(ctx, id)
	if err != nil {
		return nil, err
	}

	photoPayloads := make([]directoryDomain.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		url, err := s.s3.PresignUrl(p.URL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"photo_id":   p.ID,
				"error":      err.Error(),
			}).Warn("Failed to presign photo URL")
			url = p.URL
		}
		photoPayloads = append(photoPayloads, directoryDomain.PhotoResponse{
			ID:      p.ID,
			URL:     url,
			Caption: p.Caption,
		})
	}

	resp := makeBusinessResponse(business, photoPayloads)
	return &resp, nil
}

func (s *directoryService) UpdateBusiness(ctx context.Context, userID, id string, req directoryDomain.UpdateBusinessRequest) (*directoryDomain.BusinessResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, directoryDomain.ErrUpdateBusiness
	}

	business, err := repo.Businesses.GetBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, directoryDomain.ErrBusinessNotFound
		}
		return nil, err
	}
	if business.OwnerID != userID {
		return nil, directoryDomain.ErrBusinessNotOwned
	}

	if req.Name != "" {
		business.Name = req.Name
	}
	if req.Phone != "" {
		business.Phone = req.Phone
	}
	if req.Email != "" {
		business.Email = req.Email
	}
	if req.Description != "" {
		business.Description = req.Description
	}
	if req.Website != "" {
		business.Website = req.Website
	}
	if req.EmergencyCallout != nil {
		business.EmergencyCallout = *req.EmergencyCallout
	}
	if req.CalloutFeePence != nil {
		business.CalloutFeePence = *req.CalloutFeePence
	}
	business.UpdatedAt = time.Now()

	if err := repo.Businesses.UpdateBusiness(ctx, business); err != nil {
		return nil, directoryDomain.ErrUpdateBusiness
	}

	s.invalidateListings(ctx, business)

	resp := makeBusinessResponse(business, nil)
	return &resp, nil
}

func (s *directoryService) DeleteBusiness(ctx context.Context, userID, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.directoryRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return directoryDomain.ErrDeleteBusiness
	}
	defer repo.Rollback()

	business, err := repo.Businesses.GetBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return directoryDomain.ErrBusinessNotFound
		}
		return err
	}
	if business.OwnerID != userID {
		return directoryDomain.ErrBusinessNotOwned
	}

	if err := repo.Photos.DeletePhotosByBusiness(ctx, id); err != nil {
		return directoryDomain.ErrDeleteBusiness
	}
	if err := repo.Businesses.DeleteBusiness(ctx, id); err != nil {
		return directoryDomain.ErrDeleteBusiness
	}

	if err := repo.Commit(); err != nil {
		return directoryDomain.ErrDeleteBusiness
	}

	s.invalidateListings(ctx, business)

	return nil
}

func (s *directoryService) UploadPhoto(ctx context.Context, userID, businessID string, file *multipart.FileHeader, caption string) (*directoryDomain.PhotoResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(file); err != nil {
		return nil, directoryDomain.ErrInvalidFileType
	}

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, directoryDomain.ErrFailedToUpload
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

	fileURL, err := s.s3.UploadFile(photoPrefix, file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"business_id": businessID,
			"error":       err.Error(),
		}).Error("Failed to upload business photo")
		return nil, directoryDomain.ErrFailedToUpload
	}

	photoID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, directoryDomain.ErrFailedToUpload
	}

	photo := entity.BusinessPhoto{
		ID:         photoID,
		BusinessID: businessID,
		URL:        fileURL,
		Caption:    caption,
		CreatedAt:  time.Now(),
	}

	if err := repo.Photos.CreatePhoto(ctx, photo); err != nil {
		if delErr := s.s3.DeleteFile(fileURL); delErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_url":   fileURL,
				"error":      delErr.Error(),
			}).Warn("Failed to remove orphaned photo upload")
		}
		return nil, directoryDomain.ErrFailedToUpload
	}

	return &directoryDomain.PhotoResponse{
		ID:      photo.ID,
		URL:     fileURL,
		Caption: photo.Caption,
	}, nil
}
