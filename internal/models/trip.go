package models

import "time"

// Trip is the persistence model for the trips table.
type Trip struct {
	TripID    string    `db:"trip_id"`
	Name      *string   `db:"name"`
	DateStart time.Time `db:"date_start"`
	DateEnd   time.Time `db:"date_end"`
	City      string    `db:"city"`
	Country   string    `db:"country"`
	AuditFields
}

// TripMembership is the persistence model for the user_trips join table.
type TripMembership struct {
	Username string    `db:"username"`
	TripID   string    `db:"trip_id"`
	JoinedAt time.Time `db:"joined_at"`
}
