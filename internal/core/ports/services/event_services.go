package services

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
)

// EventSvcFacade is the CRUD surface for events.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, username, tripID string, req dto.CreateEventRequest) (*domain.Event, error)
	ListEvents(ctx context.Context, username string) ([]domain.Event, error)
	ListTripEvents(ctx context.Context, username, tripID string) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, username, eventID string) error
}
