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
	"github.com/wayfarerhq/wayfarer_backend/internal/platform/storage"
)

const tripDateLayout = "2006-01-02"

// tripService implements TripSvcFacade and TripAuthorizerSvc. Other entity
// services lean on the authorizer half for transitive ownership checks.
type tripService struct {
	BaseService
	tripRepo  portsrepo.TripRepository
	fileStore storage.FileStore
}

// NewTripService creates a new instance of tripService.
func NewTripService(tripRepo portsrepo.TripRepository, fileStore storage.FileStore) *tripService {
	return &tripService{tripRepo: tripRepo, fileStore: fileStore}
}

var (
	_ portssvc.TripSvcFacade     = (*tripService)(nil)
	_ portssvc.TripAuthorizerSvc = (*tripService)(nil)
)

// CreateTrip inserts the trip and the creator's membership edge atomically.
func (s *tripService) CreateTrip(ctx context.Context, username string, req dto.CreateTripRequest) (*domain.Trip, error) {
	dateStart, err := time.Parse(tripDateLayout, req.DateStart)
	if err != nil {
		return nil, fmt.Errorf("invalid dateStart: %w", apperrors.ErrValidation)
	}
	dateEnd, err := time.Parse(tripDateLayout, req.DateEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid dateEnd: %w", apperrors.ErrValidation)
	}
	if dateEnd.Before(dateStart) {
		return nil, fmt.Errorf("dateEnd precedes dateStart: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	trip := domain.Trip{
		TripID:    uuid.NewString(),
		Name:      req.Name,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		City:      req.City,
		Country:   req.Country,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     username,
			LastUpdatedAt: now,
			LastUpdatedBy: username,
		},
	}
	membership := domain.TripMembership{
		Username: username,
		TripID:   trip.TripID,
		JoinedAt: now,
	}

	if err := s.tripRepo.SaveTripWithMembership(ctx, trip, membership); err != nil {
		s.LogError(ctx, err, "Failed to save trip", "trip_id", trip.TripID)
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.LogInfo(ctx, "Trip created", "trip_id", trip.TripID)
	return &trip, nil
}

func (s *tripService) ListTrips(ctx context.Context, username string) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTripsByUsername(ctx, username)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trips")
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (s *tripService) GetTrip(ctx context.Context, username, tripID string) (*domain.Trip, error) {
	if err := s.AuthorizeTripAccess(ctx, username, tripID); err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get trip", "trip_id", tripID)
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// DeleteTrip verifies ownership, then removes the trip and everything hanging
// off it in one transaction. Files of images that lost their last database
// reference are cleaned up afterwards, best-effort.
func (s *tripService) DeleteTrip(ctx context.Context, username, tripID string) error {
	if err := s.AuthorizeTripAccess(ctx, username, tripID); err != nil {
		return err
	}

	orphanedPaths, err := s.tripRepo.DeleteTripCascade(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete trip", "trip_id", tripID)
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	for _, path := range orphanedPaths {
		if err := s.fileStore.Delete(ctx, path); err != nil {
			// The database row is gone; a leaked file is the lesser evil.
			s.LogError(ctx, err, "Failed to delete image file", "path", path)
		}
	}

	s.LogInfo(ctx, "Trip deleted", "trip_id", tripID)
	return nil
}

// AuthorizeTripAccess checks the membership edge between user and trip. A
// missing trip and a trip owned by someone else are both ErrNotFound, so the
// response leaks nothing about other users' data.
func (s *tripService) AuthorizeTripAccess(ctx context.Context, username, tripID string) error {
	_, err := s.tripRepo.FindMembership(ctx, username, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to check trip membership", "trip_id", tripID)
		return fmt.Errorf("failed to check trip membership: %w", err)
	}
	return nil
}
