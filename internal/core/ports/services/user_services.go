package services

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// UserSvcFacade exposes user lookups and OAuth account provisioning.
type UserSvcFacade interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateOAuthUser fetches or creates the account backing a verified Google
	// identity. The email doubles as the username.
	CreateOAuthUser(ctx context.Context, email, name string) (*domain.User, error)
}
