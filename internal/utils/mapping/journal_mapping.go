package mapping

import (
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
)

// ToModelJournal converts a domain.Journal to its persistence model. Images
// travel separately through the journal_images join.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   d.JournalID,
		Username:    d.Username,
		TripID:      d.TripID,
		Comments:    d.Comments,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainJournal converts a models.Journal to its domain representation.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		Username:    m.Username,
		TripID:      m.TripID,
		Comments:    m.Comments,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainImage converts a models.Image to its domain representation.
func ToDomainImage(m models.Image) domain.Image {
	return domain.Image{
		ImageID: m.ImageID,
		URL:     m.URL,
		Caption: m.Caption,
	}
}
