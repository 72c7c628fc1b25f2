package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/services"
)

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type SessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo *MockSessionRepository
	service         portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.service = services.NewSessionService(suite.mockSessionRepo, time.Hour)
}

func (suite *SessionServiceTestSuite) TestCreateSession_Success() {
	ctx := context.Background()

	suite.mockSessionRepo.On("SaveSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.Username == "alice" && len(s.SessionID) == 64 && s.ExpiresAt.After(s.CreatedAt)
	})).Return(nil).Once()

	session, err := suite.service.CreateSession(ctx, "alice")

	suite.Require().NoError(err)
	suite.Equal("alice", session.Username)
	// 32 random bytes hex encoded
	suite.Len(session.SessionID, 64)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestValidateSession_Success() {
	ctx := context.Background()
	stored := &domain.Session{
		SessionID: "abc",
		Username:  "alice",
		CreatedAt: time.Now().Add(-time.Minute),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockSessionRepo.On("FindSessionByID", ctx, "abc").Return(stored, nil).Once()

	session, err := suite.service.ValidateSession(ctx, "abc")

	suite.Require().NoError(err)
	suite.Equal("alice", session.Username)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestValidateSession_Unknown() {
	ctx := context.Background()

	suite.mockSessionRepo.On("FindSessionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	session, err := suite.service.ValidateSession(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestValidateSession_ExpiredIsRemoved() {
	ctx := context.Background()
	stored := &domain.Session{
		SessionID: "stale",
		Username:  "alice",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	suite.mockSessionRepo.On("FindSessionByID", ctx, "stale").Return(stored, nil).Once()
	suite.mockSessionRepo.On("DeleteSession", ctx, "stale").Return(nil).Once()

	session, err := suite.service.ValidateSession(ctx, "stale")

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrSessionExpired)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestDestroySession() {
	ctx := context.Background()
	suite.mockSessionRepo.On("DeleteSession", ctx, "abc").Return(nil).Once()

	suite.Require().NoError(suite.service.DestroySession(ctx, "abc"))
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
