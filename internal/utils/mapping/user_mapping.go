package mapping

import (
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
)

// ToModelUser converts a domain.User to its persistence model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		AuthProvider: string(d.AuthProvider),
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainUser converts a models.User to its domain representation.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}
