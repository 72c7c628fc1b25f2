package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
	"github.com/wayfarerhq/wayfarer_backend/internal/platform/storage"
)

type journalService struct {
	BaseService
	journalRepo    portsrepo.JournalRepository
	tripAuthorizer portssvc.TripAuthorizerSvc
	fileStore      storage.FileStore
}

// NewJournalService creates a new instance of journalService.
func NewJournalService(journalRepo portsrepo.JournalRepository, tripAuthorizer portssvc.TripAuthorizerSvc, fileStore storage.FileStore) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:    journalRepo,
		tripAuthorizer: tripAuthorizer,
		fileStore:      fileStore,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// AddJournal commits the journal row first, then stores each photo. A photo
// failure never rolls back the journal: failures are collected per file and
// returned alongside the journal.
func (s *journalService) AddJournal(ctx context.Context, username, tripID, comment string, photos []dto.PhotoUpload) (*domain.Journal, []dto.FailedUpload, error) {
	if comment == "" && len(photos) == 0 {
		return nil, nil, fmt.Errorf("journal needs a comment or at least one photo: %w", apperrors.ErrValidation)
	}

	if err := s.tripAuthorizer.AuthorizeTripAccess(ctx, username, tripID); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	journal := domain.Journal{
		JournalID: uuid.NewString(),
		Username:  username,
		TripID:    tripID,
		Comments:  comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     username,
			LastUpdatedAt: now,
			LastUpdatedBy: username,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to save journal", "trip_id", tripID)
		return nil, nil, fmt.Errorf("failed to create journal: %w", err)
	}

	failed := s.attachPhotos(ctx, &journal, photos)

	s.LogInfo(ctx, "Journal created", "journal_id", journal.JournalID, "photos", len(journal.Images), "failed_photos", len(failed))
	return &journal, failed, nil
}

// EditJournal updates the comment in place and appends new photos. Existing
// images are never touched.
func (s *journalService) EditJournal(ctx context.Context, username, journalID string, newComment *string, photos []dto.PhotoUpload) (*domain.Journal, []dto.FailedUpload, error) {
	journal, err := s.findAuthorizedJournal(ctx, username, journalID)
	if err != nil {
		return nil, nil, err
	}

	if newComment != nil && *newComment != journal.Comments {
		now := time.Now()
		if err := s.journalRepo.UpdateJournalComments(ctx, journalID, *newComment, username, now); err != nil {
			s.LogError(ctx, err, "Failed to update journal comments", "journal_id", journalID)
			return nil, nil, fmt.Errorf("failed to update journal: %w", err)
		}
		journal.Comments = *newComment
		journal.LastUpdatedAt = now
		journal.LastUpdatedBy = username
	}

	failed := s.attachPhotos(ctx, journal, photos)

	s.LogInfo(ctx, "Journal updated", "journal_id", journalID, "new_photos", len(photos)-len(failed), "failed_photos", len(failed))
	return journal, failed, nil
}

// DeleteJournal removes the journal and its image links in one transaction,
// then cleans up files of images whose last reference just disappeared.
func (s *journalService) DeleteJournal(ctx context.Context, username, journalID string) error {
	if _, err := s.findAuthorizedJournal(ctx, username, journalID); err != nil {
		return err
	}

	orphanedPaths, err := s.journalRepo.DeleteJournalCascade(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete journal", "journal_id", journalID)
		return fmt.Errorf("failed to delete journal: %w", err)
	}

	for _, path := range orphanedPaths {
		if err := s.fileStore.Delete(ctx, path); err != nil {
			s.LogError(ctx, err, "Failed to delete image file", "path", path)
		}
	}

	s.LogInfo(ctx, "Journal deleted", "journal_id", journalID)
	return nil
}

func (s *journalService) ListJournals(ctx context.Context, username, tripID string) ([]domain.Journal, error) {
	if err := s.tripAuthorizer.AuthorizeTripAccess(ctx, username, tripID); err != nil {
		return nil, err
	}

	journals, err := s.journalRepo.ListJournalsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", "trip_id", tripID)
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	return journals, nil
}

// findAuthorizedJournal loads the journal and verifies the caller owns its
// trip. Both a missing journal and someone else's journal come back as
// ErrNotFound.
func (s *journalService) findAuthorizedJournal(ctx context.Context, username, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to find journal", "journal_id", journalID)
		return nil, fmt.Errorf("failed to find journal: %w", err)
	}

	if err := s.tripAuthorizer.AuthorizeTripAccess(ctx, username, journal.TripID); err != nil {
		return nil, err
	}

	return journal, nil
}

// attachPhotos stores each upload and links it to the journal, best-effort.
// A file that stores but fails to link is removed again so storage does not
// accumulate unreferenced files.
func (s *journalService) attachPhotos(ctx context.Context, journal *domain.Journal, photos []dto.PhotoUpload) []dto.FailedUpload {
	failed := []dto.FailedUpload{}
	for _, photo := range photos {
		path, err := s.fileStore.Store(ctx, photo.Content, photo.Filename)
		if err != nil {
			s.LogError(ctx, err, "Failed to store photo", "journal_id", journal.JournalID, "filename", photo.Filename)
			failed = append(failed, dto.FailedUpload{Filename: photo.Filename, Reason: "failed to store file"})
			continue
		}

		image := domain.Image{
			ImageID: uuid.NewString(),
			URL:     path,
			Caption: photo.Caption,
		}
		if err := s.journalRepo.AddJournalImage(ctx, journal.JournalID, image); err != nil {
			s.LogError(ctx, err, "Failed to link photo", "journal_id", journal.JournalID, "filename", photo.Filename)
			if delErr := s.fileStore.Delete(ctx, path); delErr != nil {
				s.LogError(ctx, delErr, "Failed to remove unlinked photo file", "path", path)
			}
			failed = append(failed, dto.FailedUpload{Filename: photo.Filename, Reason: "failed to record image"})
			continue
		}

		journal.Images = append(journal.Images, image)
	}
	return failed
}
