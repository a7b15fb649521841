package directory

import "time"

type CreateBusinessRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=128"`
	TradeSlug        string `json:"trade_slug" validate:"required"`
	City             string `json:"city" validate:"required"`
	Phone            string `json:"phone" validate:"required,min=7,max=20"`
	Email            string `json:"email" validate:"omitempty,email"`
	Description      string `json:"description" validate:"omitempty,max=2000"`
	Website          string `json:"website" validate:"omitempty,url"`
	EmergencyCallout bool   `json:"emergency_callout"`
	CalloutFeePence  int    `json:"callout_fee_pence" validate:"omitempty,min=0"`
}

type UpdateBusinessRequest struct {
	Name             string `json:"name" validate:"omitempty,min=2,max=128"`
	Phone            string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email            string `json:"email" validate:"omitempty,email"`
	Description      string `json:"description" validate:"omitempty,max=2000"`
	Website          string `json:"website" validate:"omitempty,url"`
	EmergencyCallout *bool  `json:"emergency_callout"`
	CalloutFeePence  *int   `json:"callout_fee_pence" validate:"omitempty,min=0"`
}

type BusinessResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	TradeSlug        string          `json:"trade_slug"`
	City             string          `json:"city"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email,omitempty"`
	Description      string          `json:"description,omitempty"`
	Website          string          `json:"website,omitempty"`
	Rating           float64         `json:"rating"`
	ReviewCount      int             `json:"review_count"`
	Verified         bool            `json:"verified"`
	EmergencyCallout bool            `json:"emergency_callout"`
	CalloutFeePence  int             `json:"callout_fee_pence,omitempty"`
	Photos           []PhotoResponse `json:"photos,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type PhotoResponse struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type ListingResponse struct {
	TradeSlug  string             `json:"trade_slug"`
	TradeName  string             `json:"trade_name"`
	City       string             `json:"city"`
	Route      string             `json:"route"`
	Businesses []BusinessResponse `json:"businesses"`
	Total      int                `json:"total"`
}

type TradeResponse struct {
	Slug        string   `json:"slug"`
	DisplayName string   `json:"display_name"`
	Icon        string   `json:"icon"`
	Synonyms    []string `json:"synonyms"`
}

type CityResponse struct {
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type CatalogResponse struct {
	Trades []TradeResponse `json:"trades"`
	Cities []CityResponse  `json:"cities"`
}

type NearestCityResponse struct {
	City CityResponse `json:"city"`
}

type CreateQuoteRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
	Description string `json:"description" validate:"required,max=2000"`
}

type QuoteResponse struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	TradeSlug   string    `json:"trade_slug"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=2,max=128"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	ScheduledAt  string `json:"scheduled_at" validate:"required"`
	Notes        string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type BookingResponse struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type CreateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Body   string `json:"body" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	Body       string    `json:"body,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}

type FavoriteListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}
