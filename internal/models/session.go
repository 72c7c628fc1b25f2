package models

import "time"

// Session is the persistence model for the sessions table.
type Session struct {
	SessionID string    `db:"session_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}
