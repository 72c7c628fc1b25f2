package services

import (
	"context"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
)

// JournalSvcFacade is the CRUD surface for journals and their photos.
type JournalSvcFacade interface {
	// AddJournal persists the journal, then stores each photo best-effort.
	// Photo failures are reported per file and never abort the journal.
	AddJournal(ctx context.Context, username, tripID, comment string, photos []dto.PhotoUpload) (*domain.Journal, []dto.FailedUpload, error)
	// EditJournal updates the comment in place and appends new photos without
	// touching existing images.
	EditJournal(ctx context.Context, username, journalID string, newComment *string, photos []dto.PhotoUpload) (*domain.Journal, []dto.FailedUpload, error)
	DeleteJournal(ctx context.Context, username, journalID string) error
	ListJournals(ctx context.Context, username, tripID string) ([]domain.Journal, error)
}
