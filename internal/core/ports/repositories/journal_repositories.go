package repositories

import (
	"context"
	"time"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
)

// JournalRepository defines persistence operations for journals, images, and
// their join rows.
type JournalRepository interface {
	SaveJournal(ctx context.Context, journal domain.Journal) error
	// FindJournalByID returns the journal without images, or apperrors.ErrNotFound.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	// UpdateJournalComments rewrites the comment text in place.
	UpdateJournalComments(ctx context.Context, journalID, comments, updatedBy string, updatedAt time.Time) error
	// AddJournalImage inserts the image row and its journal_images link in one
	// transaction, appending at the next free position.
	AddJournalImage(ctx context.Context, journalID string, image domain.Image) error
	// ListJournalsByTrip returns the journals of a trip with images nested in
	// link position order, grouped from the flat join rows.
	ListJournalsByTrip(ctx context.Context, tripID string) ([]domain.Journal, error)
	// DeleteJournalCascade removes the journal's image links and then the
	// journal row in one transaction. Images whose reference count drops to
	// zero are deleted too; their storage paths are returned for file cleanup.
	DeleteJournalCascade(ctx context.Context, journalID string) ([]string, error)
}
