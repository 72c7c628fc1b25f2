package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
	"github.com/wayfarerhq/wayfarer_backend/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	modelJournal := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (journal_id, username, trip_id, comments, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelJournal.JournalID,
		modelJournal.Username,
		modelJournal.TripID,
		modelJournal.Comments,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, username, trip_id, comments, created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`
	var modelJournal models.Journal
	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&modelJournal.JournalID,
		&modelJournal.Username,
		&modelJournal.TripID,
		&modelJournal.Comments,
		&modelJournal.CreatedAt,
		&modelJournal.CreatedBy,
		&modelJournal.LastUpdatedAt,
		&modelJournal.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	return &domainJournal, nil
}

func (r *PgxJournalRepository) UpdateJournalComments(ctx context.Context, journalID, comments, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET comments = $1, last_updated_at = $2, last_updated_by = $3
		WHERE journal_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, comments, updatedAt, updatedBy, journalID)
	if err != nil {
		return fmt.Errorf("failed to update journal comments: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddJournalImage inserts the image row and its journal_images link in one
// transaction, appending at the next free position.
func (r *PgxJournalRepository) AddJournalImage(ctx context.Context, journalID string, image domain.Image) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits

	imageQuery := `INSERT INTO images (image_id, url, caption) VALUES ($1, $2, $3);`
	if _, err := tx.Exec(ctx, imageQuery, image.ImageID, image.URL, image.Caption); err != nil {
		return apperrors.NewAppError(500, "failed to insert image "+image.ImageID, err)
	}

	linkQuery := `
		INSERT INTO journal_images (journal_id, image_id, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0)
		FROM journal_images
		WHERE journal_id = $1;
	`
	if _, err := tx.Exec(ctx, linkQuery, journalID, image.ImageID); err != nil {
		return apperrors.NewAppError(500, "failed to link image "+image.ImageID+" to journal "+journalID, err)
	}

	return r.Commit(ctx, tx)
}

// ListJournalsByTrip returns the trip's journals with images nested in link
// position order, grouped from the flat join rows.
func (r *PgxJournalRepository) ListJournalsByTrip(ctx context.Context, tripID string) ([]domain.Journal, error) {
	query := `
		SELECT j.journal_id, j.username, j.trip_id, j.comments, j.created_at, j.created_by, j.last_updated_at, j.last_updated_by,
		       i.image_id, i.url, i.caption
		FROM journals j
		LEFT JOIN journal_images ji ON ji.journal_id = j.journal_id
		LEFT JOIN images i ON i.image_id = ji.image_id
		WHERE j.trip_id = $1
		ORDER BY j.journal_id ASC, ji.position ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals for trip %s: %w", tripID, err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	index := map[string]int{}
	for rows.Next() {
		var modelJournal models.Journal
		var imageID, url, caption *string
		err := rows.Scan(
			&modelJournal.JournalID,
			&modelJournal.Username,
			&modelJournal.TripID,
			&modelJournal.Comments,
			&modelJournal.CreatedAt,
			&modelJournal.CreatedBy,
			&modelJournal.LastUpdatedAt,
			&modelJournal.LastUpdatedBy,
			&imageID,
			&url,
			&caption,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}

		i, ok := index[modelJournal.JournalID]
		if !ok {
			journals = append(journals, mapping.ToDomainJournal(modelJournal))
			i = len(journals) - 1
			index[modelJournal.JournalID] = i
		}
		if imageID != nil {
			journals[i].Images = append(journals[i].Images, mapping.ToDomainImage(models.Image{
				ImageID: *imageID,
				URL:     *url,
				Caption: *caption,
			}))
		}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", rows.Err())
	}

	return journals, nil
}

// DeleteJournalCascade removes the journal's image links and the journal row
// in one transaction. Images left with no remaining links anywhere are
// deleted too; their storage paths are returned for file cleanup.
func (r *PgxJournalRepository) DeleteJournalCascade(ctx context.Context, journalID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	imageRows, err := tx.Query(ctx, `SELECT image_id FROM journal_images WHERE journal_id = $1;`, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect images for journal "+journalID, err)
	}
	imageIDs := []string{}
	for imageRows.Next() {
		var id string
		if err := imageRows.Scan(&id); err != nil {
			imageRows.Close()
			return nil, fmt.Errorf("failed to scan image id row: %w", err)
		}
		imageIDs = append(imageIDs, id)
	}
	imageRows.Close()
	if imageRows.Err() != nil {
		return nil, fmt.Errorf("error iterating image id rows: %w", imageRows.Err())
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_images WHERE journal_id = $1;`, journalID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to delete image links for journal "+journalID, err)
	}

	// An image may still be linked from another journal; only unreferenced
	// ones go.
	orphanQuery := `
		DELETE FROM images i
		WHERE i.image_id = ANY($1)
		AND NOT EXISTS (SELECT 1 FROM journal_images ji WHERE ji.image_id = i.image_id)
		RETURNING i.url;
	`
	orphanRows, err := tx.Query(ctx, orphanQuery, imageIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to delete orphaned images for journal "+journalID, err)
	}
	orphanPaths := []string{}
	for orphanRows.Next() {
		var url string
		if err := orphanRows.Scan(&url); err != nil {
			orphanRows.Close()
			return nil, fmt.Errorf("failed to scan orphaned image row: %w", err)
		}
		orphanPaths = append(orphanPaths, url)
	}
	orphanRows.Close()
	if orphanRows.Err() != nil {
		return nil, fmt.Errorf("error iterating orphaned image rows: %w", orphanRows.Err())
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM journals WHERE journal_id = $1;`, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to delete journal "+journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return orphanPaths, nil
}
