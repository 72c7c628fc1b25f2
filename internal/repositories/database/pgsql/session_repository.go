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

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepository
var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	modelSession := mapping.ToModelSession(session)
	query := `
        INSERT INTO sessions (session_id, username, created_at, expires_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelSession.SessionID,
		modelSession.Username,
		modelSession.CreatedAt,
		modelSession.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT session_id, username, created_at, expires_at
		FROM sessions
		WHERE session_id = $1;
	`
	var modelSession models.Session
	err := r.Pool.QueryRow(ctx, query, sessionID).Scan(
		&modelSession.SessionID,
		&modelSession.Username,
		&modelSession.CreatedAt,
		&modelSession.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	domainSession := mapping.ToDomainSession(modelSession)
	return &domainSession, nil
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	query := `DELETE FROM sessions WHERE session_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= now();`
	cmdTag, err := r.Pool.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
