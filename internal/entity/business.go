package entity

import "time"

type Business struct {
	ID               string    `db:"id"`
	OwnerID          string    `db:"owner_id"`
	Name             string    `db:"name"`
	TradeSlug        string    `db:"trade_slug"`
	City             string    `db:"city"`
	Phone            string    `db:"phone"`
	Email            string    `db:"email"`
	Description      string    `db:"description"`
	Website          string    `db:"website"`
	Rating           float64   `db:"rating"`
	ReviewCount      int       `db:"review_count"`
	Verified         bool      `db:"verified"`
	EmergencyCallout bool      `db:"emergency_callout"`
	CalloutFeePence  int       `db:"callout_fee_pence"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type BusinessPhoto struct {
	ID         string    `db:"id"`
	BusinessID string    `db:"business_id"`
	URL        string    `db:"url"`
	Caption    string    `db:"caption"`
	CreatedAt  time.Time `db:"created_at"`
}

type QuoteRequest struct {
	ID          string    `db:"id"`
	BusinessID  string    `db:"business_id"`
	Name        string    `db:"name"`
	Phone       string    `db:"phone"`
	Description string    `db:"description"`
	TradeSlug   string    `db:"trade_slug"`
	City        string    `db:"city"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type Booking struct {
	ID           string    `db:"id"`
	BusinessID   string    `db:"business_id"`
	CustomerName string    `db:"customer_name"`
	Phone        string    `db:"phone"`
	ScheduledAt  time.Time `db:"scheduled_at"`
	Notes        string    `db:"notes"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Review struct {
	ID         string    `db:"id"`
	BusinessID string    `db:"business_id"`
	Author     string    `db:"author"`
	Rating     int       `db:"rating"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
}

type Favorite struct {
	UserID     string    `db:"user_id"`
	BusinessID string    `db:"business_id"`
	CreatedAt  time.Time `db:"created_at"`
}
