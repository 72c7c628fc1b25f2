package dto

import (
	"time"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

const dateLayout = "2006-01-02"

// CreateTripRequest defines the payload for creating a trip. Dates use the
// YYYY-MM-DD form.
type CreateTripRequest struct {
	Name      *string `json:"name"`
	DateStart string  `json:"dateStart" binding:"required,datetime=2006-01-02"`
	DateEnd   string  `json:"dateEnd" binding:"required,datetime=2006-01-02"`
	City      string  `json:"city" binding:"required"`
	Country   string  `json:"country" binding:"required"`
}

// TripResponse is the public view of a trip.
type TripResponse struct {
	TripID    string  `json:"tripID"`
	Name      *string `json:"name,omitempty"`
	DateStart string  `json:"dateStart"`
	DateEnd   string  `json:"dateEnd"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	CreatedAt string  `json:"createdAt"`
}

// ListTripsResponse wraps the list of trips.
type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ToTripResponse converts a domain.Trip to its public representation.
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:    t.TripID,
		Name:      t.Name,
		DateStart: t.DateStart.Format(dateLayout),
		DateEnd:   t.DateEnd.Format(dateLayout),
		City:      t.City,
		Country:   t.Country,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// ToListTripsResponse converts a slice of domain.Trip to ListTripsResponse.
func ToListTripsResponse(trips []domain.Trip) ListTripsResponse {
	resp := ListTripsResponse{Trips: make([]TripResponse, len(trips))}
	for i := range trips {
		resp.Trips[i] = ToTripResponse(&trips[i])
	}
	return resp
}
