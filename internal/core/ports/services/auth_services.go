package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
)

// AuthSvcFacade registers and authenticates users against stored credentials.
type AuthSvcFacade interface {
	// Register fails with apperrors.ErrDuplicate when the username is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate fails with apperrors.ErrUnauthorized for an unknown user or
	// a failed hash comparison; the two cases are indistinguishable.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// SessionSvcFacade manages server-side sessions keyed by opaque ids.
type SessionSvcFacade interface {
	CreateSession(ctx context.Context, username string) (*domain.Session, error)
	// ValidateSession returns apperrors.ErrUnauthorized for unknown ids and
	// apperrors.ErrSessionExpired for stale ones (expired rows are removed).
	ValidateSession(ctx context.Context, sessionID string) (*domain.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
}

// TokenSvcFacade issues JWT access tokens for API clients.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google OAuth code exchange and ID-token
// validation.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
