package domain

import "time"

// Trip is the root of the ownership graph. Ownership is established by a
// TripMembership edge, never by a column on the trip row itself.
type Trip struct {
	TripID    string    `json:"tripID"`
	Name      *string   `json:"name,omitempty"`
	DateStart time.Time `json:"dateStart"`
	DateEnd   time.Time `json:"dateEnd"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	AuditFields
}

// TripMembership links a username to a trip it owns. The schema allows
// many-to-many but the application uses exactly one owner per trip.
type TripMembership struct {
	Username string    `json:"username"`
	TripID   string    `json:"tripID"`
	JoinedAt time.Time `json:"joinedAt"`
}
