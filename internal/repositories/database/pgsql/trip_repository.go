package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
	"github.com/wayfarerhq/wayfarer_backend/internal/utils/mapping"
)

type PgxTripRepository struct {
	BaseRepository
}

func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepository {
	return &PgxTripRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTripRepository implements portsrepo.TripRepository
var _ portsrepo.TripRepository = (*PgxTripRepository)(nil)

// SaveTripWithMembership inserts the trip and its owning membership edge
// within a single DB transaction.
func (r *PgxTripRepository) SaveTripWithMembership(ctx context.Context, trip domain.Trip, membership domain.TripMembership) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits

	modelTrip := mapping.ToModelTrip(trip)
	tripQuery := `
		INSERT INTO trips (trip_id, name, date_start, date_end, city, country, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, tripQuery,
		modelTrip.TripID,
		modelTrip.Name,
		modelTrip.DateStart,
		modelTrip.DateEnd,
		modelTrip.City,
		modelTrip.Country,
		modelTrip.CreatedAt,
		modelTrip.CreatedBy,
		modelTrip.LastUpdatedAt,
		modelTrip.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert trip "+modelTrip.TripID, err)
	}

	membershipQuery := `
		INSERT INTO user_trips (username, trip_id, joined_at)
		VALUES ($1, $2, $3);
	`
	_, err = tx.Exec(ctx, membershipQuery, membership.Username, membership.TripID, membership.JoinedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert trip membership for "+membership.Username, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `
		SELECT trip_id, name, date_start, date_end, city, country, created_at, created_by, last_updated_at, last_updated_by
		FROM trips
		WHERE trip_id = $1;
	`
	var modelTrip models.Trip
	err := r.Pool.QueryRow(ctx, query, tripID).Scan(
		&modelTrip.TripID,
		&modelTrip.Name,
		&modelTrip.DateStart,
		&modelTrip.DateEnd,
		&modelTrip.City,
		&modelTrip.Country,
		&modelTrip.CreatedAt,
		&modelTrip.CreatedBy,
		&modelTrip.LastUpdatedAt,
		&modelTrip.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trip %s: %w", tripID, err)
	}

	domainTrip := mapping.ToDomainTrip(modelTrip)
	return &domainTrip, nil
}

func (r *PgxTripRepository) ListTripsByUsername(ctx context.Context, username string) ([]domain.Trip, error) {
	query := `
		SELECT t.trip_id, t.name, t.date_start, t.date_end, t.city, t.country, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM trips t
		JOIN user_trips ut ON ut.trip_id = t.trip_id
		WHERE ut.username = $1
		ORDER BY t.trip_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips for %s: %w", username, err)
	}
	defer rows.Close()

	modelTrips := []models.Trip{}
	for rows.Next() {
		var modelTrip models.Trip
		err := rows.Scan(
			&modelTrip.TripID,
			&modelTrip.Name,
			&modelTrip.DateStart,
			&modelTrip.DateEnd,
			&modelTrip.City,
			&modelTrip.Country,
			&modelTrip.CreatedAt,
			&modelTrip.CreatedBy,
			&modelTrip.LastUpdatedAt,
			&modelTrip.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		modelTrips = append(modelTrips, modelTrip)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", rows.Err())
	}

	return mapping.ToDomainTripSlice(modelTrips), nil
}

func (r *PgxTripRepository) FindMembership(ctx context.Context, username, tripID string) (*domain.TripMembership, error) {
	query := `
		SELECT username, trip_id, joined_at
		FROM user_trips
		WHERE username = $1 AND trip_id = $2;
	`
	var m models.TripMembership
	err := r.Pool.QueryRow(ctx, query, username, tripID).Scan(&m.Username, &m.TripID, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership for %s on trip %s: %w", username, tripID, err)
	}

	return &domain.TripMembership{Username: m.Username, TripID: m.TripID, JoinedAt: m.JoinedAt}, nil
}

// DeleteTripCascade removes the trip together with its journals, image links,
// orphaned images, events, event links, and membership edges, all within one
// transaction. Returned paths belong to images that no longer exist anywhere
// and whose files should be removed from storage.
func (r *PgxTripRepository) DeleteTripCascade(ctx context.Context, tripID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Images referenced only through this trip's journals lose their last
	// reference once those journals go, so collect them up front.
	orphanImageQuery := `
		SELECT i.image_id, i.url
		FROM images i
		WHERE EXISTS (
			SELECT 1 FROM journal_images ji
			JOIN journals j ON j.journal_id = ji.journal_id
			WHERE ji.image_id = i.image_id AND j.trip_id = $1
		)
		AND NOT EXISTS (
			SELECT 1 FROM journal_images ji2
			JOIN journals j2 ON j2.journal_id = ji2.journal_id
			WHERE ji2.image_id = i.image_id AND j2.trip_id <> $1
		);
	`
	rows, err := tx.Query(ctx, orphanImageQuery, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect orphaned images for trip "+tripID, err)
	}
	orphanIDs := []string{}
	orphanPaths := []string{}
	for rows.Next() {
		var id, url string
		if err := rows.Scan(&id, &url); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan orphaned image row: %w", err)
		}
		orphanIDs = append(orphanIDs, id)
		orphanPaths = append(orphanPaths, url)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating orphaned image rows: %w", rows.Err())
	}

	// Same idea for events: an event whose only link is to this trip goes
	// with the trip.
	eventRows, err := tx.Query(ctx, `SELECT event_id FROM trip_events WHERE trip_id = $1;`, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect events for trip "+tripID, err)
	}
	eventIDs := []string{}
	for eventRows.Next() {
		var id string
		if err := eventRows.Scan(&id); err != nil {
			eventRows.Close()
			return nil, fmt.Errorf("failed to scan event id row: %w", err)
		}
		eventIDs = append(eventIDs, id)
	}
	eventRows.Close()
	if eventRows.Err() != nil {
		return nil, fmt.Errorf("error iterating event id rows: %w", eventRows.Err())
	}

	statements := []struct {
		desc  string
		query string
		args  []any
	}{
		{"delete journal image links", `DELETE FROM journal_images WHERE journal_id IN (SELECT journal_id FROM journals WHERE trip_id = $1);`, []any{tripID}},
		{"delete orphaned images", `DELETE FROM images WHERE image_id = ANY($1);`, []any{orphanIDs}},
		{"delete journals", `DELETE FROM journals WHERE trip_id = $1;`, []any{tripID}},
		{"delete event links", `DELETE FROM trip_events WHERE trip_id = $1;`, []any{tripID}},
		{"delete orphaned events", `DELETE FROM events e WHERE e.event_id = ANY($1) AND NOT EXISTS (SELECT 1 FROM trip_events te WHERE te.event_id = e.event_id);`, []any{eventIDs}},
		{"delete memberships", `DELETE FROM user_trips WHERE trip_id = $1;`, []any{tripID}},
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt.query, stmt.args...); err != nil {
			return nil, apperrors.NewAppError(500, "failed to "+stmt.desc+" for trip "+tripID, err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to delete trip "+tripID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return orphanPaths, nil
}
