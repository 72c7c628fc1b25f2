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
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
	"github.com/wayfarerhq/wayfarer_backend/internal/utils"
)

// authService implements AuthSvcFacade on top of the user repository and
// bcrypt hashing.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a local account with a bcrypt password hash.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", "username", req.Username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.Username,
			LastUpdatedAt: now,
			LastUpdatedBy: req.Username,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Registration rejected, username taken", "username", req.Username)
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save user", "username", req.Username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &user, nil
}

// Authenticate verifies the username/password pair. Unknown users and bad
// passwords both come back as ErrUnauthorized so callers cannot probe for
// account existence.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for authentication", "username", username)
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Password mismatch", "username", username)
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
