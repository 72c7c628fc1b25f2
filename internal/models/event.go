package models

// Event is the persistence model for the events table. TripID is populated
// from the trip_events join when reading.
type Event struct {
	EventID      string  `db:"event_id"`
	Activity     string  `db:"activity"`
	StartTime    string  `db:"start_time"`
	EndTime      string  `db:"end_time"`
	HotelBooking *string `db:"hotel_booking"`
	PlaneTickets *string `db:"plane_tickets"`
	TripID       string  `db:"trip_id"`
	AuditFields
}
