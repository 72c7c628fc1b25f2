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
	"github.com/wayfarerhq/wayfarer_backend/internal/utils"
)

// sessionService implements SessionSvcFacade with opaque server-side sessions
// stored in postgres. The session id is a 32-byte random hex string; nothing
// about the user can be derived from it.
type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepository
	ttl         time.Duration
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo portsrepo.SessionRepository, ttl time.Duration) portssvc.SessionSvcFacade {
	return &sessionService{sessionRepo: sessionRepo, ttl: ttl}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) CreateSession(ctx context.Context, username string) (*domain.Session, error) {
	sessionID, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session id", "username", username)
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	now := time.Now()
	session := domain.Session{
		SessionID: sessionID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save session", "username", username)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &session, nil
}

// ValidateSession resolves a session id to its owner. Expired sessions are
// removed on sight so the table does not accumulate stale rows between
// cleanup sweeps.
func (s *sessionService) ValidateSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up session")
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
			s.LogError(ctx, err, "Failed to delete expired session")
		}
		return nil, apperrors.ErrSessionExpired
	}

	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to destroy session")
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
