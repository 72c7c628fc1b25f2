package services

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
)

// DestinationSvcFacade is the CRUD surface for shared destinations. There is
// deliberately no ownership parameter: destinations are global.
type DestinationSvcFacade interface {
	CreateDestination(ctx context.Context, username string, req dto.CreateDestinationRequest) (*domain.Destination, error)
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	DeleteDestination(ctx context.Context, destinationID string) error
}
