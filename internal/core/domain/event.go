package domain

// Event is an itinerary item. It carries no owner of its own; access is
// derived transitively through the trip_events join back to a membership.
type Event struct {
	EventID      string  `json:"eventID"`
	Activity     string  `json:"activity"`
	StartTime    string  `json:"startTime"` // HH:MM
	EndTime      string  `json:"endTime"`   // HH:MM
	HotelBooking *string `json:"hotelBooking,omitempty"`
	PlaneTickets *string `json:"planeTickets,omitempty"`
	TripID       string  `json:"tripID"`
	AuditFields
}
