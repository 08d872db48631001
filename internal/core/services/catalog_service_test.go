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

// --- Mock ServiceRepository (based on ServiceRepositoryFacade usage) ---
type MockServiceRepository struct {
	mock.Mock
	FindServiceByIDFn func(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServicesFn    func(ctx context.Context, includeInactive bool) ([]domain.Service, error)
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	if m.FindServiceByIDFn != nil {
		return m.FindServiceByIDFn(ctx, serviceID)
	}
	args := m.Called(ctx, serviceID)
	var service *domain.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*domain.Service)
	}
	return service, args.Error(1)
}

func (m *MockServiceRepository) FindServices(ctx context.Context, includeInactive bool) ([]domain.Service, error) {
	if m.FindServicesFn != nil {
		return m.FindServicesFn(ctx, includeInactive)
	}
	args := m.Called(ctx, includeInactive)
	var out []domain.Service
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Service)
	}
	return out, args.Error(1)
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) SetServiceActive(ctx context.Context, serviceID string, active bool, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, serviceID, active, updatedAt, updatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type CatalogServiceTestSuite struct {
	suite.Suite
	mockServiceRepo *MockServiceRepository
	service         portssvc.CatalogSvcFacade
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewCatalogService(suite.mockServiceRepo)
}

// --- CreateService Tests ---
func (suite *CatalogServiceTestSuite) TestCreateService_Success() {
	ctx := context.Background()
	req := dto.CreateServiceRequest{Name: "Haircut", PriceCents: 2500}

	suite.mockServiceRepo.On("SaveService", ctx, mock.MatchedBy(func(service domain.Service) bool {
		return service.Name == "Haircut" && service.PriceCents == 2500 && service.IsActive
	})).Return(nil).Once()

	created, err := suite.service.CreateService(ctx, req, "creator-id")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ServiceID)
	suite.True(created.Billable())
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestCreateService_NonPositivePrice() {
	ctx := context.Background()
	req := dto.CreateServiceRequest{Name: "Freebie", PriceCents: 0}

	created, err := suite.service.CreateService(ctx, req, "creator-id")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockServiceRepo.AssertNotCalled(suite.T(), "SaveService", mock.Anything, mock.Anything)
}

// --- UpdateService Tests ---
func (suite *CatalogServiceTestSuite) TestUpdateService_PriceChange() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	newPrice := int64(3000)
	req := dto.UpdateServiceRequest{PriceCents: &newPrice}
	original := &domain.Service{ServiceID: serviceID, Name: "Haircut", PriceCents: 2500, IsActive: true}

	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).Return(original, nil).Once()
	suite.mockServiceRepo.On("UpdateService", ctx, mock.MatchedBy(func(service domain.Service) bool {
		return service.PriceCents == 3000 && service.LastUpdatedBy == "updater-id"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateService(ctx, serviceID, req, "updater-id")

	suite.Require().NoError(err)
	suite.Equal(int64(3000), updated.PriceCents)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestUpdateService_NotFound() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	newPrice := int64(3000)
	req := dto.UpdateServiceRequest{PriceCents: &newPrice}

	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateService(ctx, serviceID, req, "updater-id")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

// --- SetServiceActive Tests ---
func (suite *CatalogServiceTestSuite) TestSetServiceActive_Deactivate() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	original := &domain.Service{ServiceID: serviceID, Name: "Haircut", PriceCents: 2500, IsActive: true}

	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).Return(original, nil).Once()
	suite.mockServiceRepo.On("SetServiceActive", ctx, serviceID, false, mock.AnythingOfType("time.Time"), "admin-id").Return(nil).Once()

	err := suite.service.SetServiceActive(ctx, serviceID, false, "admin-id")

	suite.Require().NoError(err)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

// --- ListServices Tests ---
func (suite *CatalogServiceTestSuite) TestListServices_PassesIncludeInactive() {
	ctx := context.Background()
	expected := []domain.Service{{ServiceID: uuid.NewString(), Name: "Haircut"}}

	suite.mockServiceRepo.On("FindServices", ctx, true).Return(expected, nil).Once()

	out, err := suite.service.ListServices(ctx, true)

	suite.Require().NoError(err)
	suite.Len(out, 1)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
