package repositories

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// TripRepository defines persistence operations for trips and their
// membership edges.
type TripRepository interface {
	// SaveTripWithMembership inserts the trip row and its owning membership
	// edge in a single transaction. Partial application is a bug: a failed
	// membership insert rolls back the trip insert.
	SaveTripWithMembership(ctx context.Context, trip domain.Trip, membership domain.TripMembership) error
	// FindTripByID returns apperrors.ErrNotFound for unknown ids.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)
	// ListTripsByUsername returns the trips joined to the user via membership,
	// ordered by trip_id ascending.
	ListTripsByUsername(ctx context.Context, username string) ([]domain.Trip, error)
	// FindMembership returns apperrors.ErrNotFound when no edge exists.
	FindMembership(ctx context.Context, username, tripID string) (*domain.TripMembership, error)
	// DeleteTripCascade removes the trip and everything transitively linked to
	// it (events, journals, image links, orphaned images, membership edges)
	// in one transaction. It returns the storage paths of images that were
	// deleted so the caller can clean up the file backend.
	DeleteTripCascade(ctx context.Context, tripID string) ([]string, error)
}
