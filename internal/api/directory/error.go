package directory

import "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/response"

var (
	ErrUnknownTrade      = response.NewError(404, "unknown trade")
	ErrUnknownCity       = response.NewError(404, "unknown city")
	ErrBusinessNotFound  = response.NewError(404, "business not found")
	ErrBusinessNotOwned  = response.NewError(403, "business does not belong to user")
	ErrCreateBusiness    = response.NewError(500, "failed to create business")
	ErrUpdateBusiness    = response.NewError(500, "failed to update business")
	ErrDeleteBusiness    = response.NewError(500, "failed to delete business")
	ErrInvalidFileType   = response.NewError(400, "invalid file type")
	ErrFailedToUpload    = response.NewError(500, "failed to upload file")
	ErrQuoteNotFound     = response.NewError(404, "quote request not found")
	ErrCreateQuote       = response.NewError(500, "failed to create quote request")
	ErrBookingNotFound   = response.NewError(404, "booking not found")
	ErrCreateBooking     = response.NewError(500, "failed to create booking")
	ErrInvalidSchedule   = response.NewError(400, "scheduled time is invalid or in the past")
	ErrCreateReview      = response.NewError(500, "failed to create review")
	ErrDeleteReview      = response.NewError(500, "failed to delete review")
	ErrReviewNotFound    = response.NewError(404, "review not found")
	ErrDuplicateReview   = response.NewError(409, "user already reviewed this business")
	ErrFavoriteNotFound  = response.NewError(404, "favorite not found")
	ErrDuplicateFavorite = response.NewError(409, "business already in favorites")
	ErrFavoriteOperation = response.NewError(500, "failed to update favorites")
)
