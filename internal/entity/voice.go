package entity

import "time"

// VoiceCommandLog records one final transcript and how it was resolved:
// a local keyword match or a generated reply, and where it navigated.
type VoiceCommandLog struct {
	ID         string    `db:"id"`
	SessionID  string    `db:"session_id"`
	Transcript string    `db:"transcript"`
	Source     string    `db:"source"`
	Keyword    string    `db:"keyword"`
	Route      string    `db:"route"`
	Reply      string    `db:"reply"`
	CreatedAt  time.Time `db:"created_at"`
}
