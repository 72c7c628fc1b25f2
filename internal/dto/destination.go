package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// CreateDestinationRequest defines the payload for creating a shared map pin.
// Coordinates are decimal strings to avoid float drift on round trips.
type CreateDestinationRequest struct {
	City      string           `json:"city" binding:"required"`
	Country   string           `json:"country" binding:"required"`
	Latitude  *decimal.Decimal `json:"latitude" binding:"required,geo_lat"`
	Longitude *decimal.Decimal `json:"longitude" binding:"required,geo_long"`
}

// DestinationResponse is the public view of a destination.
type DestinationResponse struct {
	DestinationID string          `json:"destinationID"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	Latitude      decimal.Decimal `json:"latitude"`
	Longitude     decimal.Decimal `json:"longitude"`
}

// ListDestinationsResponse wraps the list of destinations.
type ListDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
}

// ToDestinationResponse converts a domain.Destination to its public representation.
func ToDestinationResponse(d *domain.Destination) DestinationResponse {
	return DestinationResponse{
		DestinationID: d.DestinationID,
		City:          d.City,
		Country:       d.Country,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
	}
}

// ToListDestinationsResponse converts a slice of domain.Destination to ListDestinationsResponse.
func ToListDestinationsResponse(destinations []domain.Destination) ListDestinationsResponse {
	resp := ListDestinationsResponse{Destinations: make([]DestinationResponse, len(destinations))}
	for i := range destinations {
		resp.Destinations[i] = ToDestinationResponse(&destinations[i])
	}
	return resp
}
