package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	portssvc "github.com/svctracker/service_tracker_app/internal/core/ports/services"
	"github.com/svctracker/service_tracker_app/internal/core/services"
	"github.com/svctracker/service_tracker_app/internal/dto"
)

// --- Mock ServiceLogRepository (based on ServiceLogRepositoryFacade usage) ---
type MockServiceLogRepository struct {
	mock.Mock
}

func (m *MockServiceLogRepository) ListForReport(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
	args := m.Called(ctx, filter)
	var rows []domain.ReportSourceRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.ReportSourceRow)
	}
	return rows, args.Error(1)
}

func (m *MockServiceLogRepository) FindRecent(ctx context.Context, limit int) ([]domain.ReportSourceRow, error) {
	args := m.Called(ctx, limit)
	var rows []domain.ReportSourceRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.ReportSourceRow)
	}
	return rows, args.Error(1)
}

func (m *MockServiceLogRepository) SaveServiceLog(ctx context.Context, log domain.ServiceLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockServiceLogRepository) DeleteServiceLog(ctx context.Context, logID string) error {
	args := m.Called(ctx, logID)
	return args.Error(0)
}

// --- Test Suite ---
type ServiceLogServiceTestSuite struct {
	suite.Suite
	mockLogRepo     *MockServiceLogRepository
	mockUserRepo    *MockUserRepository
	mockServiceRepo *MockServiceRepository
	service         portssvc.ServiceLogSvcFacade
}

func (suite *ServiceLogServiceTestSuite) SetupTest() {
	suite.mockLogRepo = new(MockServiceLogRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewServiceLogService(suite.mockLogRepo, suite.mockUserRepo, suite.mockServiceRepo)
}

func (suite *ServiceLogServiceTestSuite) activeUser(userID string) *domain.User {
	return &domain.User{UserID: userID, Username: "alice", IsActive: true}
}

// --- CreateServiceLog Tests ---
func (suite *ServiceLogServiceTestSuite) TestCreateServiceLog_InlineAmount() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := int64(4000)
	served := time.Date(2024, 3, 4, 10, 0, 0, 0, time.FixedZone("EST", -5*3600))
	req := dto.CreateServiceLogRequest{
		UserID:      userID,
		ServedAt:    served,
		Qty:         1,
		AmountCents: &amount,
		TipCents:    500,
		PaymentType: "Credit",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(suite.activeUser(userID), nil).Once()
	suite.mockLogRepo.On("SaveServiceLog", ctx, mock.MatchedBy(func(log domain.ServiceLog) bool {
		// The timestamp must be normalized to UTC before persistence.
		return log.ServedAt.Location() == time.UTC && log.ServedAt.Equal(served) &&
			log.AmountCents != nil && *log.AmountCents == 4000 &&
			log.PaymentType == domain.PaymentCredit
	})).Return(nil).Once()

	created, err := suite.service.CreateServiceLog(ctx, req, "creator-id")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.LogID)
	suite.False(created.CatalogPriced())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *ServiceLogServiceTestSuite) TestCreateServiceLog_CatalogPriced() {
	ctx := context.Background()
	userID := uuid.NewString()
	serviceID := uuid.NewString()
	req := dto.CreateServiceLogRequest{
		UserID:    userID,
		ServedAt:  time.Now(),
		Qty:       2,
		ServiceID: &serviceID,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(suite.activeUser(userID), nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).
		Return(&domain.Service{ServiceID: serviceID, Name: "Haircut", PriceCents: 2500, IsActive: true}, nil).Once()
	suite.mockLogRepo.On("SaveServiceLog", ctx, mock.MatchedBy(func(log domain.ServiceLog) bool {
		return log.CatalogPriced() && log.Qty == 2
	})).Return(nil).Once()

	created, err := suite.service.CreateServiceLog(ctx, req, "creator-id")

	suite.Require().NoError(err)
	suite.True(created.CatalogPriced())
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *ServiceLogServiceTestSuite) TestCreateServiceLog_BothVariantsRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	serviceID := uuid.NewString()
	amount := int64(1000)
	req := dto.CreateServiceLogRequest{
		UserID:      userID,
		ServedAt:    time.Now(),
		Qty:         1,
		ServiceID:   &serviceID,
		AmountCents: &amount,
	}

	created, err := suite.service.CreateServiceLog(ctx, req, "creator-id")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "SaveServiceLog", mock.Anything, mock.Anything)
}

func (suite *ServiceLogServiceTestSuite) TestCreateServiceLog_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := int64(1000)
	req := dto.CreateServiceLogRequest{
		UserID:      userID,
		ServedAt:    time.Now(),
		Qty:         1,
		AmountCents: &amount,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateServiceLog(ctx, req, "creator-id")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ServiceLogServiceTestSuite) TestCreateServiceLog_InactiveServiceRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	serviceID := uuid.NewString()
	req := dto.CreateServiceLogRequest{
		UserID:    userID,
		ServedAt:  time.Now(),
		Qty:       1,
		ServiceID: &serviceID,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(suite.activeUser(userID), nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).
		Return(&domain.Service{ServiceID: serviceID, Name: "Retired", PriceCents: 2500, IsActive: false}, nil).Once()

	created, err := suite.service.CreateServiceLog(ctx, req, "creator-id")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "SaveServiceLog", mock.Anything, mock.Anything)
}

// --- ListRecentLogs Tests ---
func (suite *ServiceLogServiceTestSuite) TestListRecentLogs_ClampsLimit() {
	ctx := context.Background()

	suite.mockLogRepo.On("FindRecent", ctx, 100).Return([]domain.ReportSourceRow{}, nil).Once()

	rows, err := suite.service.ListRecentLogs(ctx, 5000)

	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

// --- DeleteServiceLog Tests ---
func (suite *ServiceLogServiceTestSuite) TestDeleteServiceLog_Success() {
	ctx := context.Background()
	logID := uuid.NewString()

	suite.mockLogRepo.On("DeleteServiceLog", ctx, logID).Return(nil).Once()

	err := suite.service.DeleteServiceLog(ctx, logID, "admin-id")

	suite.Require().NoError(err)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *ServiceLogServiceTestSuite) TestDeleteServiceLog_NotFound() {
	ctx := context.Background()
	logID := uuid.NewString()

	suite.mockLogRepo.On("DeleteServiceLog", ctx, logID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteServiceLog(ctx, logID, "admin-id")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestServiceLogService(t *testing.T) {
	suite.Run(t, new(ServiceLogServiceTestSuite))
}
