package services

import (
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/platform/config"
	"github.com/wayfarerhq/wayfarer_backend/internal/platform/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fileStore storage.FileStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Trip service first: events and journals depend on it for ownership
	// checks.
	tripSvc := NewTripService(repos.TripRepo, fileStore)
	container.Trip = tripSvc

	container.Auth = NewAuthService(repos.UserRepo)
	container.Session = NewSessionService(repos.SessionRepo, cfg.SessionTTL)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.User = NewUserService(repos.UserRepo)
	container.Event = NewEventService(repos.EventRepo, tripSvc)
	container.Journal = NewJournalService(repos.JournalRepo, tripSvc, fileStore)
	container.Destination = NewDestinationService(repos.DestinationRepo)

	return container
}
