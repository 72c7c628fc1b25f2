package repositories

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// DestinationRepository defines persistence operations for shared destinations.
type DestinationRepository interface {
	SaveDestination(ctx context.Context, destination domain.Destination) error
	// ListDestinations returns all destinations ordered by destination_id.
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	// DeleteDestination returns apperrors.ErrNotFound when no row was removed.
	DeleteDestination(ctx context.Context, destinationID string) error
}
