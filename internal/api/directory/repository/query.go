package directoryRepository

const (
	queryCreateBusiness = `
		INSERT INTO businesses (
			id,
			owner_id,
			name,
			trade_slug,
			city,
			phone,
			email,
			description,
			website,
			rating,
			review_count,
			verified,
			emergency_callout,
			callout_fee_pence,
			created_at,
			updated_at
		) VALUES (
			:id,
			:owner_id,
			:name,
			:trade_slug,
			:city,
			:phone,
			:email,
			:description,
			:website,
			:rating,
			:review_count,
			:verified,
			:emergency_callout,
			:callout_fee_pence,
			:created_at,
			:updated_at
		)
	`

	queryGetBusinessByID = `
		SELECT
			id,
			owner_id,
			name,
			trade_slug,
			city,
			phone,
			email,
			description,
			website,
			rating,
			review_count,
			verified,
			emergency_callout,
			callout_fee_pence,
			created_at,
			updated_at
		FROM businesses
		WHERE id = :id
	`

	queryGetBusinessesByTradeCity = `
		SELECT
			id,
			owner_id,
			name,
			trade_slug,
			city,
			phone,
			email,
			description,
			website,
			rating,
			review_count,
			verified,
			emergency_callout,
			callout_fee_pence,
			created_at,
			updated_at
		FROM businesses
		WHERE trade_slug = :trade_slug AND city = :city
		ORDER BY emergency_callout DESC, rating DESC, review_count DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBusinessesByTradeCity = `
		SELECT COUNT(*)
		FROM businesses
		WHERE trade_slug = :trade_slug AND city = :city
	`

	queryUpdateBusiness = `
		UPDATE businesses
		SET
			name = :name,
			phone = :phone,
			email = :email,
			description = :description,
			website = :website,
			emergency_callout = :emergency_callout,
			callout_fee_pence = :callout_fee_pence,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateRatingAggregates = `
		UPDATE businesses
		SET
			rating = :rating,
			review_count = :review_count,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBusiness = `
		DELETE FROM businesses
		WHERE id = :id
	`

	queryCreatePhoto = `
		INSERT INTO business_photos (
			id,
			business_id,
			url,
			caption,
			created_at
		) VALUES (
			:id,
			:business_id,
			:url,
			:caption,
			:created_at
		)
	`

	queryGetPhotosByBusiness = `
		SELECT
			id,
			business_id,
			url,
			caption,
			created_at
		FROM business_photos
		WHERE business_id = :business_id
		ORDER BY created_at ASC
	`

	queryDeletePhotosByBusiness = `
		DELETE FROM business_photos
		WHERE business_id = :business_id
	`

	queryCreateQuote = `
		INSERT INTO quote_requests (
			id,
			business_id,
			name,
			phone,
			description,
			trade_slug,
			city,
			status,
			created_at
		) VALUES (
			:id,
			:business_id,
			:name,
			:phone,
			:description,
			:trade_slug,
			:city,
			:status,
			:created_at
		)
	`

	queryGetQuotesByBusiness = `
		SELECT
			id,
			business_id,
			name,
			phone,
			description,
			trade_slug,
			city,
			status,
			created_at
		FROM quote_requests
		WHERE business_id = :business_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountQuotesByBusiness = `
		SELECT COUNT(*)
		FROM quote_requests
		WHERE business_id = :business_id
	`

	queryCreateBooking = `
		INSERT INTO bookings (
			id,
			business_id,
			customer_name,
			phone,
			scheduled_at,
			notes,
			status,
			created_at,
			updated_at
		) VALUES (
			:id,
			:business_id,
			:customer_name,
			:phone,
			:scheduled_at,
			:notes,
			:status,
			:created_at,
			:updated_at
		)
	`

	queryGetBookingByID = `
		SELECT
			id,
			business_id,
			customer_name,
			phone,
			scheduled_at,
			notes,
			status,
			created_at,
			updated_at
		FROM bookings
		WHERE id = :id
	`

	queryGetBookingsByBusiness = `
		SELECT
			id,
			business_id,
			customer_name,
			phone,
			scheduled_at,
			notes,
			status,
			created_at,
			updated_at
		FROM bookings
		WHERE business_id = :business_id
		ORDER BY scheduled_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBookingsByBusiness = `
		SELECT COUNT(*)
		FROM bookings
		WHERE business_id = :business_id
	`

	queryUpdateBookingStatus = `
		UPDATE bookings
		SET
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryCreateReview = `
		INSERT INTO reviews (
			id,
			business_id,
			author,
			rating,
			body,
			created_at
		) VALUES (
			:id,
			:business_id,
			:author,
			:rating,
			:body,
			:created_at
		)
	`

	queryGetReviewsByBusiness = `
		SELECT
			id,
			business_id,
			author,
			rating,
			body,
			created_at
		FROM reviews
		WHERE business_id = :business_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountReviewsByBusiness = `
		SELECT COUNT(*)
		FROM reviews
		WHERE business_id = :business_id
	`

	queryGetRatingAggregates = `
		SELECT
			COALESCE(AVG(rating), 0) AS rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE business_id = :business_id
	`

	queryHasUserReviewed = `
		SELECT COUNT(*)
		FROM reviews
		WHERE business_id = :business_id AND author = :author
	`

	queryGetReviewByID = `
		SELECT
			id,
			business_id,
			author,
			rating,
			body,
			created_at
		FROM reviews
		WHERE id = :id
	`

	queryDeleteReview = `
		DELETE FROM reviews
		WHERE id = :id
	`

	queryCreateFavorite = `
		INSERT INTO favorites (
			user_id,
			business_id,
			created_at
		) VALUES (
			:user_id,
			:business_id,
			:created_at
		)
	`

	queryDeleteFavorite = `
		DELETE FROM favorites
		WHERE user_id = :user_id AND business_id = :business_id
	`

	queryGetFavoriteBusinesses = `
		SELECT
			b.id,
			b.owner_id,
			b.name,
			b.trade_slug,
			b.city,
			b.phone,
			b.email,
			b.description,
			b.website,
			b.rating,
			b.review_count,
			b.verified,
			b.emergency_callout,
			b.callout_fee_pence,
			b.created_at,
			b.updated_at
		FROM favorites f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.user_id = :user_id
		ORDER BY f.created_at DESC
	`

	queryIsFavorite = `
		SELECT COUNT(*)
		FROM favorites
		WHERE user_id = :user_id AND business_id = :business_id
	`
)
