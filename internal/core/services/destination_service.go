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

// destinationService implements DestinationSvcFacade. Destinations are a
// shared map layer: any authenticated user can add or remove pins.
type destinationService struct {
	BaseService
	destinationRepo portsrepo.DestinationRepository
}

// NewDestinationService creates a new instance of destinationService.
func NewDestinationService(destinationRepo portsrepo.DestinationRepository) portssvc.DestinationSvcFacade {
	return &destinationService{destinationRepo: destinationRepo}
}

var _ portssvc.DestinationSvcFacade = (*destinationService)(nil)

func (s *destinationService) CreateDestination(ctx context.Context, username string, req dto.CreateDestinationRequest) (*domain.Destination, error) {
	now := time.Now()
	destination := domain.Destination{
		DestinationID: uuid.NewString(),
		City:          req.City,
		Country:       req.Country,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     username,
			LastUpdatedAt: now,
			LastUpdatedBy: username,
		},
	}

	if err := s.destinationRepo.SaveDestination(ctx, destination); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save destination")
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}

	s.LogInfo(ctx, "Destination created", "destination_id", destination.DestinationID)
	return &destination, nil
}

func (s *destinationService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.destinationRepo.ListDestinations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list destinations")
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return destinations, nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, destinationID string) error {
	if err := s.destinationRepo.DeleteDestination(ctx, destinationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete destination", "destination_id", destinationID)
		return fmt.Errorf("failed to delete destination: %w", err)
	}

	s.LogInfo(ctx, "Destination deleted", "destination_id", destinationID)
	return nil
}
