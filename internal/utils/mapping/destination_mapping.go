package mapping

import (
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
)

// ToModelDestination converts a domain.Destination to its persistence model.
func ToModelDestination(d domain.Destination) models.Destination {
	return models.Destination{
		DestinationID: d.DestinationID,
		City:          d.City,
		Country:       d.Country,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainDestination converts a models.Destination to its domain representation.
func ToDomainDestination(m models.Destination) domain.Destination {
	return domain.Destination{
		DestinationID: m.DestinationID,
		City:          m.City,
		Country:       m.Country,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainDestinationSlice converts a slice of models.Destination to domain destinations.
func ToDomainDestinationSlice(ms []models.Destination) []domain.Destination {
	ds := make([]domain.Destination, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDestination(m)
	}
	return ds
}
