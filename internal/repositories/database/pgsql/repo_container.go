package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		SessionRepo:     newPgxSessionRepository(dbPool),
		TripRepo:        newPgxTripRepository(dbPool),
		EventRepo:       newPgxEventRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		DestinationRepo: newPgxDestinationRepository(dbPool),
	}
}
