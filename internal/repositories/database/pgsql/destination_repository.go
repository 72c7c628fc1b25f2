package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
	"github.com/wayfarerhq/wayfarer_backend/internal/models"
	"github.com/wayfarerhq/wayfarer_backend/internal/utils/mapping"
)

type PgxDestinationRepository struct {
	BaseRepository
}

func newPgxDestinationRepository(pool *pgxpool.Pool) portsrepo.DestinationRepository {
	return &PgxDestinationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDestinationRepository implements portsrepo.DestinationRepository
var _ portsrepo.DestinationRepository = (*PgxDestinationRepository)(nil)

func (r *PgxDestinationRepository) SaveDestination(ctx context.Context, destination domain.Destination) error {
	modelDestination := mapping.ToModelDestination(destination)
	query := `
		INSERT INTO destinations (destination_id, city, country, latitude, longitude, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelDestination.DestinationID,
		modelDestination.City,
		modelDestination.Country,
		modelDestination.Latitude,
		modelDestination.Longitude,
		modelDestination.CreatedAt,
		modelDestination.CreatedBy,
		modelDestination.LastUpdatedAt,
		modelDestination.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("destination already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save destination: %w", err)
	}
	return nil
}

func (r *PgxDestinationRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	query := `
		SELECT destination_id, city, country, latitude, longitude, created_at, created_by, last_updated_at, last_updated_by
		FROM destinations
		ORDER BY destination_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	modelDestinations := []models.Destination{}
	for rows.Next() {
		var m models.Destination
		err := rows.Scan(
			&m.DestinationID,
			&m.City,
			&m.Country,
			&m.Latitude,
			&m.Longitude,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination row: %w", err)
		}
		modelDestinations = append(modelDestinations, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating destination rows: %w", rows.Err())
	}

	return mapping.ToDomainDestinationSlice(modelDestinations), nil
}

func (r *PgxDestinationRepository) DeleteDestination(ctx context.Context, destinationID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM destinations WHERE destination_id = $1;`, destinationID)
	if err != nil {
		return fmt.Errorf("failed to delete destination %s: %w", destinationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
