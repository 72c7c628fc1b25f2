package repositories

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// SessionRepository defines persistence operations for server-side sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, session domain.Session) error
	// FindSessionByID returns apperrors.ErrNotFound for unknown ids.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteExpiredSessions removes every session past its expiry and reports
	// how many rows were removed.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
