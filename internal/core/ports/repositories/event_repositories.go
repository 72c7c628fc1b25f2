package repositories

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// EventRepository defines persistence operations for events and their
// trip_events join rows.
type EventRepository interface {
	// SaveEventWithLink inserts the event row and its trip_events join in a
	// single transaction. event.TripID names the linked trip.
	SaveEventWithLink(ctx context.Context, event domain.Event) error
	// FindEventByID returns the event with TripID populated from the join, or
	// apperrors.ErrNotFound.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	// ListEventsByUsername walks events→trip_events→user_trips and returns
	// every event the user can reach, ordered by event_id ascending.
	ListEventsByUsername(ctx context.Context, username string) ([]domain.Event, error)
	// ListEventsByTrip returns the events of one trip, ordered by event_id.
	ListEventsByTrip(ctx context.Context, tripID string) ([]domain.Event, error)
	// DeleteEvent removes the join row and the event row in one transaction.
	DeleteEvent(ctx context.Context, eventID string) error
}
