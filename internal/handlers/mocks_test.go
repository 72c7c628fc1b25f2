package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
	"github.com/wayfarerhq/wayfarer_backend/internal/handlers"
	"github.com/wayfarerhq/wayfarer_backend/internal/platform/config"
)

// testConfig returns a config suitable for handler tests. Production mode
// keeps swagger routes out of the router.
func testConfig() *config.Config {
	return &config.Config{
		Port:                "8080",
		IsProduction:        true,
		JWTSecret:           "test-secret",
		JWTExpiryDuration:   time.Hour,
		JWTIssuer:           "wayfarer-backend",
		SessionCookieName:   "wayfarer_session",
		SessionTTL:          time.Hour,
		SessionCookieSecure: false,
		CORSAllowedOrigins:  []string{"http://localhost:3000"},
	}
}

// newTestRouter builds a full router over the given mocked service container.
func newTestRouter(cfg *config.Config, services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, services)
	return r
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, username string) (*domain.Session, error) {
	args := m.Called(ctx, username)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionService) ValidateSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionService) DestroySession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	var token *oauth2.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*oauth2.Token)
	}
	return token, args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	var payload *idtoken.Payload
	if args.Get(0) != nil {
		payload = args.Get(0).(*idtoken.Payload)
	}
	return payload, args.Error(1)
}

func (m *MockGoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	var info *domain.GoogleUserInfo
	if args.Get(0) != nil {
		info = args.Get(0).(*domain.GoogleUserInfo)
	}
	return info, args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) CreateOAuthUser(ctx context.Context, email, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) CreateTrip(ctx context.Context, username string, req dto.CreateTripRequest) (*domain.Trip, error) {
	args := m.Called(ctx, username, req)
	var trip *domain.Trip
	if args.Get(0) != nil {
		trip = args.Get(0).(*domain.Trip)
	}
	return trip, args.Error(1)
}

func (m *MockTripService) ListTrips(ctx context.Context, username string) ([]domain.Trip, error) {
	args := m.Called(ctx, username)
	var trips []domain.Trip
	if args.Get(0) != nil {
		trips = args.Get(0).([]domain.Trip)
	}
	return trips, args.Error(1)
}

func (m *MockTripService) GetTrip(ctx context.Context, username, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, username, tripID)
	var trip *domain.Trip
	if args.Get(0) != nil {
		trip = args.Get(0).(*domain.Trip)
	}
	return trip, args.Error(1)
}

func (m *MockTripService) DeleteTrip(ctx context.Context, username, tripID string) error {
	args := m.Called(ctx, username, tripID)
	return args.Error(0)
}

var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, username, tripID string, req dto.CreateEventRequest) (*domain.Event, error) {
	args := m.Called(ctx, username, tripID, req)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, username string) ([]domain.Event, error) {
	args := m.Called(ctx, username)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventService) ListTripEvents(ctx context.Context, username, tripID string) ([]domain.Event, error) {
	args := m.Called(ctx, username, tripID)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, username, eventID string) error {
	args := m.Called(ctx, username, eventID)
	return args.Error(0)
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) AddJournal(ctx context.Context, username, tripID, comment string, photos []dto.PhotoUpload) (*domain.Journal, []dto.FailedUpload, error) {
	args := m.Called(ctx, username, tripID, comment, photos)
	var journal *domain.Journal
	if args.Get(0) != nil {
		journal = args.Get(0).(*domain.Journal)
	}
	var failed []dto.FailedUpload
	if args.Get(1) != nil {
		failed = args.Get(1).([]dto.FailedUpload)
	}
	return journal, failed, args.Error(2)
}

func (m *MockJournalService) EditJournal(ctx context.Context, username, journalID string, newComment *string, photos []dto.PhotoUpload) (*domain.Journal, []dto.FailedUpload, error) {
	args := m.Called(ctx, username, journalID, newComment, photos)
	var journal *domain.Journal
	if args.Get(0) != nil {
		journal = args.Get(0).(*domain.Journal)
	}
	var failed []dto.FailedUpload
	if args.Get(1) != nil {
		failed = args.Get(1).([]dto.FailedUpload)
	}
	return journal, failed, args.Error(2)
}

func (m *MockJournalService) DeleteJournal(ctx context.Context, username, journalID string) error {
	args := m.Called(ctx, username, journalID)
	return args.Error(0)
}

func (m *MockJournalService) ListJournals(ctx context.Context, username, tripID string) ([]domain.Journal, error) {
	args := m.Called(ctx, username, tripID)
	var journals []domain.Journal
	if args.Get(0) != nil {
		journals = args.Get(0).([]domain.Journal)
	}
	return journals, args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock DestinationService ---
type MockDestinationService struct {
	mock.Mock
}

func (m *MockDestinationService) CreateDestination(ctx context.Context, username string, req dto.CreateDestinationRequest) (*domain.Destination, error) {
	args := m.Called(ctx, username, req)
	var destination *domain.Destination
	if args.Get(0) != nil {
		destination = args.Get(0).(*domain.Destination)
	}
	return destination, args.Error(1)
}

func (m *MockDestinationService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	var destinations []domain.Destination
	if args.Get(0) != nil {
		destinations = args.Get(0).([]domain.Destination)
	}
	return destinations, args.Error(1)
}

func (m *MockDestinationService) DeleteDestination(ctx context.Context, destinationID string) error {
	args := m.Called(ctx, destinationID)
	return args.Error(0)
}

var _ portssvc.DestinationSvcFacade = (*MockDestinationService)(nil)
