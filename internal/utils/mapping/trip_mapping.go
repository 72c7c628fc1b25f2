package mapping

import (
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
)

// ToModelTrip converts a domain.Trip to its persistence model.
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:      d.TripID,
		Name:        d.Name,
		DateStart:   d.DateStart,
		DateEnd:     d.DateEnd,
		City:        d.City,
		Country:     d.Country,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainTrip converts a models.Trip to its domain representation.
func ToDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:      m.TripID,
		Name:        m.Name,
		DateStart:   m.DateStart,
		DateEnd:     m.DateEnd,
		City:        m.City,
		Country:     m.Country,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainTripSlice converts a slice of models.Trip to domain trips.
func ToDomainTripSlice(ms []models.Trip) []domain.Trip {
	ds := make([]domain.Trip, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrip(m)
	}
	return ds
}
