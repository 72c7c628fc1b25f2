package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
	"github.com/wayfarerhq/wayfarer_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAuthService(suite.mockUserRepo)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "alice", Password: "password123"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "alice" &&
			user.AuthProvider == domain.ProviderLocal &&
			user.PasswordHash != "" &&
			user.PasswordHash != "password123"
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("alice", user.Username)
	suite.True(utils.CheckPasswordHash("password123", user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "alice", Password: "password123"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{Username: "alice", PasswordHash: hash, AuthProvider: domain.ProviderLocal}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "alice", "password123")

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{Username: "alice", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "alice", "not-the-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_UnknownUserLooksLikeWrongPassword() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "nobody", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Same sentinel as a wrong password, so callers cannot probe accounts.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestAuthenticate_RepoError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(nil, assert.AnError).Once()

	user, err := suite.service.Authenticate(ctx, "alice", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
