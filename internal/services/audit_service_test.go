package services

import (
	"errors"
	"testing"
	"time"

	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo)
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestNewAuditService() {
	service := NewAuditService(s.mockRepo)
	s.NotNil(service)
}

func (s *AuditServiceTestSuite) TestValidateActivityType_ValidLogin() {
	err := ValidateActivityType(models.AuditActionLogin)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestValidateActivityType_ValidProfileUpdated() {
	err := ValidateActivityType(models.AuditActionProfileUpdated)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestValidateActivityType_ValidSuggestionRun() {
	err := ValidateActivityType(models.AuditActionSuggestionRun)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestValidateActivityType_InvalidAction() {
	err := ValidateActivityType("invalid_action")
	s.Error(err)
}

func (s *AuditServiceTestSuite) TestValidateActivityType_EmptyAction() {
	err := ValidateActivityType("")
	s.Error(err)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_ValidLog() {
	userID := uuid.New()
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogin,
		Resource:   "auth",
		ResourceID: userID.String(),
	}

	s.mockRepo.EXPECT().
		Create(log).
		Return(nil).
		Times(1)

	err := s.service.CreateAuditLog(log)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_NilLog() {
	err := s.service.CreateAuditLog(nil)
	s.Equal(ErrInvalidAuditLog, err)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_InvalidAction() {
	log := &models.AuditLog{
		Action:   "bogus",
		Resource: "auth",
	}

	err := s.service.CreateAuditLog(log)
	s.Error(err)
	s.Contains(err.Error(), "invalid activity type")
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_RepositoryError() {
	userID := uuid.New()
	log := &models.AuditLog{
		UserID:   &userID,
		Action:   models.AuditActionLogin,
		Resource: "auth",
	}

	s.mockRepo.EXPECT().
		Create(log).
		Return(errors.New("database error")).
		Times(1)

	err := s.service.CreateAuditLog(log)
	s.Error(err)
	s.Contains(err.Error(), "database error")
}

func (s *AuditServiceTestSuite) TestGetUserActivity_GetAll() {
	userID := uuid.New()

	expected := []*models.AuditLog{
		{
			ID:         uuid.New(),
			UserID:     &userID,
			Action:     models.AuditActionLogout,
			Resource:   "auth",
			ResourceID: userID.String(),
		},
		{
			ID:         uuid.New(),
			UserID:     &userID,
			Action:     models.AuditActionProfileUpdated,
			Resource:   "user",
			ResourceID: userID.String(),
		},
		{
			ID:         uuid.New(),
			UserID:     &userID,
			Action:     models.AuditActionLogin,
			Resource:   "auth",
			ResourceID: userID.String(),
		},
	}

	s.mockRepo.EXPECT().
		GetUserActivity(userID, nil, nil, 0, 10).
		Return(expected, int64(3), nil).
		Times(1)

	results, total, err := s.service.GetUserActivity(userID, nil, nil, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(results, 3)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_WithDateRange() {
	userID := uuid.New()
	startDate := time.Now().Add(-24 * time.Hour)
	endDate := time.Now()

	expected := []*models.AuditLog{
		{
			ID:         uuid.New(),
			UserID:     &userID,
			Action:     models.AuditActionLogout,
			Resource:   "auth",
			ResourceID: userID.String(),
		},
	}

	s.mockRepo.EXPECT().
		GetUserActivity(userID, &startDate, &endDate, 0, 10).
		Return(expected, int64(1), nil).
		Times(1)

	results, total, err := s.service.GetUserActivity(userID, &startDate, &endDate, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(results, 1)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_WithPagination() {
	userID := uuid.New()

	expected := []*models.AuditLog{
		{
			ID:         uuid.New(),
			UserID:     &userID,
			Action:     models.AuditActionProfileUpdated,
			Resource:   "user",
			ResourceID: userID.String(),
		},
		{
			ID:         uuid.New(),
			UserID:     &userID,
			Action:     models.AuditActionLogin,
			Resource:   "auth",
			ResourceID: userID.String(),
		},
	}

	s.mockRepo.EXPECT().
		GetUserActivity(userID, nil, nil, 1, 2).
		Return(expected, int64(5), nil).
		Times(1)

	results, total, err := s.service.GetUserActivity(userID, nil, nil, 1, 2)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(results, 2)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_InvalidUserID() {
	results, total, err := s.service.GetUserActivity(uuid.Nil, nil, nil, 0, 10)
	s.Equal(ErrInvalidUserID, err)
	s.Nil(results)
	s.Equal(int64(0), total)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_InvalidDateRange() {
	userID := uuid.New()
	startDate := time.Now()
	endDate := time.Now().Add(-24 * time.Hour)

	results, total, err := s.service.GetUserActivity(userID, &startDate, &endDate, 0, 10)
	s.Equal(ErrAuditDateRange, err)
	s.Nil(results)
	s.Equal(int64(0), total)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_RepositoryError() {
	userID := uuid.New()

	s.mockRepo.EXPECT().
		GetUserActivity(userID, nil, nil, 0, 10).
		Return(nil, int64(0), errors.New("database error")).
		Times(1)

	results, total, err := s.service.GetUserActivity(userID, nil, nil, 0, 10)
	s.Error(err)
	s.Nil(results)
	s.Equal(int64(0), total)
	s.Contains(err.Error(), "database error")
}

func (s *AuditServiceTestSuite) TestLogLogin() {
	userID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionLogin, log.Action)
			s.Equal("192.168.1.1", log.IPAddress)
			s.Equal("Mozilla/5.0", log.UserAgent)
			s.Equal("auth", log.Resource)
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogLogin(userID, "192.168.1.1", "Mozilla/5.0")
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogLogout() {
	userID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionLogout, log.Action)
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogLogout(userID, "192.168.1.1", "Mozilla/5.0")
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogProfileUpdate() {
	userID := uuid.New()
	performedBy := uuid.New()

	changes := map[string]interface{}{
		"full_name": "Asha Patil",
		"phone":     "+919999911111",
	}

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionProfileUpdated, log.Action)
			s.NotNil(log.Metadata)
			s.Equal(performedBy.String(), log.GetMetadata("performed_by", ""))
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogProfileUpdate(userID, performedBy, "192.168.1.1", "Mozilla/5.0", changes)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogPasswordReset() {
	userID := uuid.New()
	performedBy := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionPasswordReset, log.Action)
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogPasswordReset(userID, performedBy, "192.168.1.1", "Mozilla/5.0")
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogPasswordUpdate() {
	userID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionPasswordUpdated, log.Action)
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogPasswordUpdate(userID, "192.168.1.1", "Mozilla/5.0")
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogUserCreated() {
	userID := uuid.New()
	performedBy := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionUserCreated, log.Action)
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogUserCreated(userID, performedBy, "192.168.1.1", "Mozilla/5.0")
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogUserDeleted() {
	userID := uuid.New()
	performedBy := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionUserDeleted, log.Action)
			s.NotNil(log.Metadata)
			s.Equal("Requested by user", log.GetMetadata("reason", ""))
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogUserDeleted(userID, performedBy, "192.168.1.1", "Mozilla/5.0", "Requested by user")
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogRoleAssigned() {
	userID := uuid.New()
	performedBy := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionRoleAssigned, log.Action)
			s.Equal("role", log.Resource)
			s.Equal(models.RoleModerator, log.GetMetadata("role", ""))
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogRoleAssigned(userID, performedBy, models.RoleModerator)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogSuggestionRun() {
	userID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(&userID, log.UserID)
			s.Equal(models.AuditActionSuggestionRun, log.Action)
			s.Equal("suggestion", log.Resource)
			// The caste field never enters the audit trail
			s.Nil(log.Metadata["caste"])
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogSuggestionRun(&userID, 15000, 42, "192.168.1.1")
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogDataIngested() {
	performedBy := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionDataIngested, log.Action)
			s.Equal("cutoffs_2024.pdf", log.ResourceID)
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogDataIngested(performedBy, "cutoffs_2024.pdf", 1200)
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogDataCleared() {
	performedBy := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.AuditLog) error {
			s.Equal(models.AuditActionDataCleared, log.Action)
			s.Equal("year:2023", log.ResourceID)
			log.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.LogDataCleared(performedBy, "year:2023", 300)
	s.NoError(err)
}
