package mapping

import (
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
)

// ToModelSession converts a domain.Session to its persistence model.
func ToModelSession(d domain.Session) models.Session {
	return models.Session{
		SessionID: d.SessionID,
		Username:  d.Username,
		CreatedAt: d.CreatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}

// ToDomainSession converts a models.Session to its domain representation.
func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID: m.SessionID,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}
