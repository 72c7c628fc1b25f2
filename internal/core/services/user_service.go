package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get user", "username", username)
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// CreateOAuthUser fetches or creates the account backing a verified Google
// identity. The verified email doubles as the username, so repeat logins find
// the same account.
func (s *userService) CreateOAuthUser(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up oauth user", "email", email)
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	now := time.Now()
	newUser := domain.User{
		Username:     email,
		AuthProvider: domain.ProviderGoogle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     email,
			LastUpdatedAt: now,
			LastUpdatedBy: email,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		// A concurrent login may have created the row between lookup and
		// insert; treat that as a successful fetch.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.userRepo.FindUserByUsername(ctx, email)
		}
		s.LogError(ctx, err, "Failed to create oauth user", "email", email)
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}

	s.LogInfo(ctx, "Created oauth user", "username", email, "name", name)
	return &newUser, nil
}
