package dto

import "github.com/wayfarerhq/wayfarer_backend/internal/core/domain"

// CreateEventRequest defines the payload for creating an event under a trip.
// Times use the 24h HH:MM form.
type CreateEventRequest struct {
	Activity     string  `json:"activity" binding:"required"`
	StartTime    string  `json:"startTime" binding:"required,datetime=15:04"`
	EndTime      string  `json:"endTime" binding:"required,datetime=15:04"`
	HotelBooking *string `json:"hotelBooking"`
	PlaneTickets *string `json:"planeTickets"`
}

// EventResponse is the public view of an event.
type EventResponse struct {
	EventID      string  `json:"eventID"`
	TripID       string  `json:"tripID"`
	Activity     string  `json:"activity"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	HotelBooking *string `json:"hotelBooking,omitempty"`
	PlaneTickets *string `json:"planeTickets,omitempty"`
}

// ListEventsResponse wraps the list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain.Event to its public representation.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:      e.EventID,
		TripID:       e.TripID,
		Activity:     e.Activity,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		HotelBooking: e.HotelBooking,
		PlaneTickets: e.PlaneTickets,
	}
}

// ToListEventsResponse converts a slice of domain.Event to ListEventsResponse.
func ToListEventsResponse(events []domain.Event) ListEventsResponse {
	resp := ListEventsResponse{Events: make([]EventResponse, len(events))}
	for i := range events {
		resp.Events[i] = ToEventResponse(&events[i])
	}
	return resp
}
