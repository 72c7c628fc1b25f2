package domain

import "time"

// Session is a server-held identity record. The opaque SessionID travels in a
// cookie; the username and expiry live only on this row.
type Session struct {
	SessionID string    `json:"-"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
