package mapping

import (
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
)

// ToModelEvent converts a domain.Event to its persistence model.
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:      d.EventID,
		Activity:     d.Activity,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		HotelBooking: d.HotelBooking,
		PlaneTickets: d.PlaneTickets,
		TripID:       d.TripID,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainEvent converts a models.Event to its domain representation.
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:      m.EventID,
		Activity:     m.Activity,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		HotelBooking: m.HotelBooking,
		PlaneTickets: m.PlaneTickets,
		TripID:       m.TripID,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToDomainEventSlice converts a slice of models.Event to domain events.
func ToDomainEventSlice(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}
