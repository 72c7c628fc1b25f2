package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/services"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestGetUserByUsername_Success() {
	ctx := context.Background()
	stored := &domain.User{Username: "alice"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(stored, nil).Once()

	user, err := suite.service.GetUserByUsername(ctx, "alice")

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByUsername_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByUsername(ctx, "nobody")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingAccountIsReused() {
	ctx := context.Background()
	stored := &domain.User{Username: "alice@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice@example.com").Return(stored, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "alice@example.com", "Alice")

	suite.Require().NoError(err)
	suite.Equal("alice@example.com", user.Username)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_CreatesNewAccount() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "new@example.com" &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "new@example.com", "New User")

	suite.Require().NoError(err)
	suite.Equal("new@example.com", user.Username)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ConcurrentInsertFallsBackToFetch() {
	ctx := context.Background()
	stored := &domain.User{Username: "race@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "race@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "race@example.com").Return(stored, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "race@example.com", "Racer")

	suite.Require().NoError(err)
	suite.Equal("race@example.com", user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
