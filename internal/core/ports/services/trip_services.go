package services

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
)

// TripSvcFacade is the CRUD surface for trips.
type TripSvcFacade interface {
	CreateTrip(ctx context.Context, username string, req dto.CreateTripRequest) (*domain.Trip, error)
	ListTrips(ctx context.Context, username string) ([]domain.Trip, error)
	GetTrip(ctx context.Context, username, tripID string) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, username, tripID string) error
}

// TripAuthorizerSvc verifies the membership edge between a user and a trip.
// Event and journal services depend on it for transitive ownership checks.
type TripAuthorizerSvc interface {
	// AuthorizeTripAccess returns apperrors.ErrNotFound when the trip does not
	// exist or belongs to someone else; the caller cannot tell which.
	AuthorizeTripAccess(ctx context.Context, username, tripID string) error
}
