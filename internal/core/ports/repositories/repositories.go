package repositories

// RepositoryProvider bundles every repository the service layer needs, so
// wiring stays in one place.
type RepositoryProvider struct {
	UserRepo        UserRepository
	SessionRepo     SessionRepository
	TripRepo        TripRepository
	EventRepo       EventRepository
	JournalRepo     JournalRepository
	DestinationRepo DestinationRepository
}
