package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
)

type eventService struct {
	BaseService
	eventRepo      portsrepo.EventRepository
	tripAuthorizer portssvc.TripAuthorizerSvc
}

// NewEventService creates a new instance of eventService.
func NewEventService(eventRepo portsrepo.EventRepository, tripAuthorizer portssvc.TripAuthorizerSvc) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, tripAuthorizer: tripAuthorizer}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// CreateEvent inserts the event and its trip link atomically after verifying
// the caller owns the trip.
func (s *eventService) CreateEvent(ctx context.Context, username, tripID string, req dto.CreateEventRequest) (*domain.Event, error) {
	if err := s.tripAuthorizer.AuthorizeTripAccess(ctx, username, tripID); err != nil {
		return nil, err
	}

	now := time.Now()
	event := domain.Event{
		EventID:      uuid.NewString(),
		Activity:     req.Activity,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		HotelBooking: req.HotelBooking,
		PlaneTickets: req.PlaneTickets,
		TripID:       tripID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     username,
			LastUpdatedAt: now,
			LastUpdatedBy: username,
		},
	}

	if err := s.eventRepo.SaveEventWithLink(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event", "event_id", event.EventID, "trip_id", tripID)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.LogInfo(ctx, "Event created", "event_id", event.EventID, "trip_id", tripID)
	return &event, nil
}

func (s *eventService) ListEvents(ctx context.Context, username string) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEventsByUsername(ctx, username)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListTripEvents(ctx context.Context, username, tripID string) ([]domain.Event, error) {
	if err := s.tripAuthorizer.AuthorizeTripAccess(ctx, username, tripID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListEventsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trip events", "trip_id", tripID)
		return nil, fmt.Errorf("failed to list trip events: %w", err)
	}
	return events, nil
}

// DeleteEvent re-verifies ownership through the event's trip link before
// removing the join row and the event in one transaction.
func (s *eventService) DeleteEvent(ctx context.Context, username, eventID string) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to find event", "event_id", eventID)
		return fmt.Errorf("failed to find event: %w", err)
	}

	if err := s.tripAuthorizer.AuthorizeTripAccess(ctx, username, event.TripID); err != nil {
		return err
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete event", "event_id", eventID)
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.LogInfo(ctx, "Event deleted", "event_id", eventID)
	return nil
}
