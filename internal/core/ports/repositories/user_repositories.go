package repositories

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user row. Returns apperrors.ErrDuplicate when the
	// username is already taken.
	SaveUser(ctx context.Context, user domain.User) error
	// FindUserByUsername returns apperrors.ErrNotFound when absent. The lookup
	// is case-sensitive.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
