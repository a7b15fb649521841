package entity

import "time"

// TriageOutcome is one completed triage flow: both slots filled and a
// listing route handed out. Kept for demand analytics per trade/city.
type TriageOutcome struct {
	ID           string    `db:"id"`
	SessionID    string    `db:"session_id"`
	TradeSlug    string    `db:"trade_slug"`
	City         string    `db:"city"`
	Route        string    `db:"route"`
	MessageCount int       `db:"message_count"`
	CreatedAt    time.Time `db:"created_at"`
}
