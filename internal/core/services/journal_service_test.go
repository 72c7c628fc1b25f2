package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/domain"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/core/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	var journal *domain.Journal
	if args.Get(0) != nil {
		journal = args.Get(0).(*domain.Journal)
	}
	return journal, args.Error(1)
}

func (m *MockJournalRepository) UpdateJournalComments(ctx context.Context, journalID, comments, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, journalID, comments, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) AddJournalImage(ctx context.Context, journalID string, image domain.Image) error {
	args := m.Called(ctx, journalID, image)
	return args.Error(0)
}

func (m *MockJournalRepository) ListJournalsByTrip(ctx context.Context, tripID string) ([]domain.Journal, error) {
	args := m.Called(ctx, tripID)
	var journals []domain.Journal
	if args.Get(0) != nil {
		journals = args.Get(0).([]domain.Journal)
	}
	return journals, args.Error(1)
}

func (m *MockJournalRepository) DeleteJournalCascade(ctx context.Context, journalID string) ([]string, error) {
	args := m.Called(ctx, journalID)
	var paths []string
	if args.Get(0) != nil {
		paths = args.Get(0).([]string)
	}
	return paths, args.Error(1)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAuthorizer  *MockTripAuthorizer
	mockFileStore   *MockFileStore
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAuthorizer = new(MockTripAuthorizer)
	suite.mockFileStore = new(MockFileStore)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAuthorizer, suite.mockFileStore)
}

func photoUpload(filename, caption, body string) dto.PhotoUpload {
	return dto.PhotoUpload{Filename: filename, Caption: caption, Content: strings.NewReader(body)}
}

func (suite *JournalServiceTestSuite) TestAddJournal_CommentOnly() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalID != "" && j.TripID == "t1" && j.Username == "alice" && j.Comments == "Great day"
	})).Return(nil).Once()

	journal, failed, err := suite.service.AddJournal(ctx, "alice", "t1", "Great day", nil)

	suite.Require().NoError(err)
	suite.Empty(failed)
	suite.Equal("Great day", journal.Comments)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAddJournal_EmptyJournalRejected() {
	ctx := context.Background()

	journal, failed, err := suite.service.AddJournal(ctx, "alice", "t1", "", nil)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.Empty(failed)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAuthorizer.AssertNotCalled(suite.T(), "AuthorizeTripAccess", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestAddJournal_WithPhotos() {
	ctx := context.Background()
	photos := []dto.PhotoUpload{
		photoUpload("sunrise.jpg", "First morning", "jpeg-bytes"),
		photoUpload("dinner.jpg", "", "jpeg-bytes"),
	}

	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()
	suite.mockFileStore.On("Store", ctx, mock.Anything, "sunrise.jpg").Return("uploads/x_sunrise.jpg", nil).Once()
	suite.mockFileStore.On("Store", ctx, mock.Anything, "dinner.jpg").Return("uploads/y_dinner.jpg", nil).Once()
	suite.mockJournalRepo.On("AddJournalImage", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(img domain.Image) bool {
		return img.URL == "uploads/x_sunrise.jpg" && img.Caption == "First morning"
	})).Return(nil).Once()
	suite.mockJournalRepo.On("AddJournalImage", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(img domain.Image) bool {
		return img.URL == "uploads/y_dinner.jpg" && img.Caption == ""
	})).Return(nil).Once()

	journal, failed, err := suite.service.AddJournal(ctx, "alice", "t1", "Day one", photos)

	suite.Require().NoError(err)
	suite.Empty(failed)
	suite.Len(journal.Images, 2)
	suite.Equal("uploads/x_sunrise.jpg", journal.Images[0].URL)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockFileStore.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAddJournal_PhotoStoreFailureIsBestEffort() {
	ctx := context.Background()
	photos := []dto.PhotoUpload{
		photoUpload("ok.jpg", "", "jpeg-bytes"),
		photoUpload("broken.jpg", "", "jpeg-bytes"),
	}

	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()
	suite.mockFileStore.On("Store", ctx, mock.Anything, "ok.jpg").Return("uploads/ok.jpg", nil).Once()
	suite.mockFileStore.On("Store", ctx, mock.Anything, "broken.jpg").Return("", assert.AnError).Once()
	suite.mockJournalRepo.On("AddJournalImage", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("domain.Image")).Return(nil).Once()

	journal, failed, err := suite.service.AddJournal(ctx, "alice", "t1", "", photos)

	// The journal commits even when a photo fails.
	suite.Require().NoError(err)
	suite.Len(journal.Images, 1)
	suite.Require().Len(failed, 1)
	suite.Equal("broken.jpg", failed[0].Filename)
	suite.Equal("failed to store file", failed[0].Reason)
	suite.mockFileStore.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAddJournal_LinkFailureRemovesStoredFile() {
	ctx := context.Background()
	photos := []dto.PhotoUpload{photoUpload("pic.jpg", "", "jpeg-bytes")}

	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()
	suite.mockFileStore.On("Store", ctx, mock.Anything, "pic.jpg").Return("uploads/pic.jpg", nil).Once()
	suite.mockJournalRepo.On("AddJournalImage", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("domain.Image")).Return(assert.AnError).Once()
	suite.mockFileStore.On("Delete", ctx, "uploads/pic.jpg").Return(nil).Once()

	journal, failed, err := suite.service.AddJournal(ctx, "alice", "t1", "Day one", photos)

	suite.Require().NoError(err)
	suite.Empty(journal.Images)
	suite.Require().Len(failed, 1)
	suite.Equal("failed to record image", failed[0].Reason)
	suite.mockFileStore.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAddJournal_TripNotOwned() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "bob", "t1").Return(apperrors.ErrNotFound).Once()

	journal, failed, err := suite.service.AddJournal(ctx, "bob", "t1", "Sneaky entry", nil)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.Empty(failed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestEditJournal_UpdatesComment() {
	ctx := context.Background()
	stored := &domain.Journal{JournalID: "j1", Username: "alice", TripID: "t1", Comments: "old"}
	newComment := "updated text"

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j1").Return(stored, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()
	suite.mockJournalRepo.On("UpdateJournalComments", ctx, "j1", "updated text", "alice", mock.AnythingOfType("time.Time")).Return(nil).Once()

	journal, failed, err := suite.service.EditJournal(ctx, "alice", "j1", &newComment, nil)

	suite.Require().NoError(err)
	suite.Empty(failed)
	suite.Equal("updated text", journal.Comments)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestEditJournal_UnchangedCommentSkipsWrite() {
	ctx := context.Background()
	stored := &domain.Journal{JournalID: "j1", Username: "alice", TripID: "t1", Comments: "same"}
	sameComment := "same"

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j1").Return(stored, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()

	journal, failed, err := suite.service.EditJournal(ctx, "alice", "j1", &sameComment, nil)

	suite.Require().NoError(err)
	suite.Empty(failed)
	suite.Equal("same", journal.Comments)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalComments", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestEditJournal_NotOwned() {
	ctx := context.Background()
	stored := &domain.Journal{JournalID: "j1", Username: "alice", TripID: "t1"}
	newComment := "bob was here"

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j1").Return(stored, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "bob", "t1").Return(apperrors.ErrNotFound).Once()

	journal, _, err := suite.service.EditJournal(ctx, "bob", "j1", &newComment, nil)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalComments", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_CleansUpOrphanedFiles() {
	ctx := context.Background()
	stored := &domain.Journal{JournalID: "j1", Username: "alice", TripID: "t1"}

	suite.mockJournalRepo.On("FindJournalByID", ctx, "j1").Return(stored, nil).Once()
	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()
	suite.mockJournalRepo.On("DeleteJournalCascade", ctx, "j1").Return([]string{"uploads/pic.jpg"}, nil).Once()
	suite.mockFileStore.On("Delete", ctx, "uploads/pic.jpg").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteJournal(ctx, "alice", "j1"))
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockFileStore.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_Unknown() {
	ctx := context.Background()

	suite.mockJournalRepo.On("FindJournalByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteJournal(ctx, "alice", "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteJournalCascade", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListJournals_Authorized() {
	ctx := context.Background()
	journals := []domain.Journal{{JournalID: "j1", TripID: "t1"}}

	suite.mockAuthorizer.On("AuthorizeTripAccess", ctx, "alice", "t1").Return(nil).Once()
	suite.mockJournalRepo.On("ListJournalsByTrip", ctx, "t1").Return(journals, nil).Once()

	got, err := suite.service.ListJournals(ctx, "alice", "t1")

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockAuthorizer.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
