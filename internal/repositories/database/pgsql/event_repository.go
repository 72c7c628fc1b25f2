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

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEventRepository implements portsrepo.EventRepository
var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

const eventSelectColumns = `e.event_id, e.activity, e.start_time, e.end_time, e.hotel_booking, e.plane_tickets, te.trip_id, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

// SaveEventWithLink inserts the event row and its trip_events join in a
// single transaction.
func (r *PgxEventRepository) SaveEventWithLink(ctx context.Context, event domain.Event) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if the transaction commits

	modelEvent := mapping.ToModelEvent(event)
	eventQuery := `
		INSERT INTO events (event_id, activity, start_time, end_time, hotel_booking, plane_tickets, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, eventQuery,
		modelEvent.EventID,
		modelEvent.Activity,
		modelEvent.StartTime,
		modelEvent.EndTime,
		modelEvent.HotelBooking,
		modelEvent.PlaneTickets,
		modelEvent.CreatedAt,
		modelEvent.CreatedBy,
		modelEvent.LastUpdatedAt,
		modelEvent.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert event "+modelEvent.EventID, err)
	}

	linkQuery := `INSERT INTO trip_events (trip_id, event_id) VALUES ($1, $2);`
	if _, err := tx.Exec(ctx, linkQuery, modelEvent.TripID, modelEvent.EventID); err != nil {
		return apperrors.NewAppError(500, "failed to link event "+modelEvent.EventID+" to trip "+modelEvent.TripID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `
		SELECT ` + eventSelectColumns + `
		FROM events e
		JOIN trip_events te ON te.event_id = e.event_id
		WHERE e.event_id = $1;
	`
	var modelEvent models.Event
	err := r.Pool.QueryRow(ctx, query, eventID).Scan(
		&modelEvent.EventID,
		&modelEvent.Activity,
		&modelEvent.StartTime,
		&modelEvent.EndTime,
		&modelEvent.HotelBooking,
		&modelEvent.PlaneTickets,
		&modelEvent.TripID,
		&modelEvent.CreatedAt,
		&modelEvent.CreatedBy,
		&modelEvent.LastUpdatedAt,
		&modelEvent.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	domainEvent := mapping.ToDomainEvent(modelEvent)
	return &domainEvent, nil
}

func (r *PgxEventRepository) ListEventsByUsername(ctx context.Context, username string) ([]domain.Event, error) {
	query := `
		SELECT ` + eventSelectColumns + `
		FROM events e
		JOIN trip_events te ON te.event_id = e.event_id
		JOIN user_trips ut ON ut.trip_id = te.trip_id
		WHERE ut.username = $1
		ORDER BY e.event_id ASC;
	`
	return r.queryEvents(ctx, query, username)
}

func (r *PgxEventRepository) ListEventsByTrip(ctx context.Context, tripID string) ([]domain.Event, error) {
	query := `
		SELECT ` + eventSelectColumns + `
		FROM events e
		JOIN trip_events te ON te.event_id = e.event_id
		WHERE te.trip_id = $1
		ORDER BY e.event_id ASC;
	`
	return r.queryEvents(ctx, query, tripID)
}

func (r *PgxEventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	modelEvents := []models.Event{}
	for rows.Next() {
		var modelEvent models.Event
		err := rows.Scan(
			&modelEvent.EventID,
			&modelEvent.Activity,
			&modelEvent.StartTime,
			&modelEvent.EndTime,
			&modelEvent.HotelBooking,
			&modelEvent.PlaneTickets,
			&modelEvent.TripID,
			&modelEvent.CreatedAt,
			&modelEvent.CreatedBy,
			&modelEvent.LastUpdatedAt,
			&modelEvent.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		modelEvents = append(modelEvents, modelEvent)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}

	return mapping.ToDomainEventSlice(modelEvents), nil
}

// DeleteEvent removes the join row and the event row in one transaction.
func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM trip_events WHERE event_id = $1;`, eventID); err != nil {
		return apperrors.NewAppError(500, "failed to unlink event "+eventID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete event "+eventID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
