package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	portssvc "github.com/svctracker/service_tracker_app/internal/core/ports/services"
	"github.com/svctracker/service_tracker_app/internal/core/services"
)

// --- Mock ServiceLogReader ---
type MockServiceLogReader struct {
	mock.Mock
	ListForReportFn func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error)
}

func (m *MockServiceLogReader) ListForReport(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
	if m.ListForReportFn != nil {
		return m.ListForReportFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var rows []domain.ReportSourceRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.ReportSourceRow)
	}
	return rows, args.Error(1)
}

func (m *MockServiceLogReader) FindRecent(ctx context.Context, limit int) ([]domain.ReportSourceRow, error) {
	args := m.Called(ctx, limit)
	var rows []domain.ReportSourceRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.ReportSourceRow)
	}
	return rows, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockLogRepo  *MockServiceLogReader
	mockUserRepo *MockUserRepository
	service      portssvc.ReportingSvcFacade
	loc          *time.Location
	now          time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	loc, err := time.LoadLocation("America/New_York")
	suite.Require().NoError(err)
	suite.loc = loc
	// Wednesday afternoon, report zone.
	suite.now = time.Date(2024, 3, 6, 15, 30, 0, 0, loc)

	suite.mockLogRepo = new(MockServiceLogReader)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewReportingService(
		suite.mockLogRepo,
		suite.mockUserRepo,
		loc,
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *ReportingServiceTestSuite) sourceRow(logID, username string, percent string, amountCents, tipCents int64, served time.Time) domain.ReportSourceRow {
	amount := amountCents
	return domain.ReportSourceRow{
		Log: domain.ServiceLog{
			LogID:       logID,
			UserID:      "u-" + username,
			ServedAt:    served,
			Qty:         1,
			AmountCents: &amount,
			TipCents:    tipCents,
			PaymentType: domain.PaymentCredit,
		},
		Username: username,
		Percent:  decimal.RequireFromString(percent),
	}
}

func (suite *ReportingServiceTestSuite) TestRunReport_QuickPeriodResolvedInReportZone() {
	ctx := context.Background()
	var captured domain.ServiceLogFilter
	suite.mockLogRepo.ListForReportFn = func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
		captured = filter
		return nil, nil
	}

	report, err := suite.service.RunReport(ctx, domain.ReportCriteria{Period: domain.PeriodThisWeek})

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.False(report.HasData)

	want := domain.ResolveQuickPeriod(domain.PeriodThisWeek, suite.now, suite.loc)
	suite.True(captured.Range.Start.Equal(want.Start), "start: got %v want %v", captured.Range.Start, want.Start)
	suite.True(captured.Range.End.Equal(want.End), "end: got %v want %v", captured.Range.End, want.End)
	suite.Nil(captured.UserID)
	suite.True(report.Range.Start.Equal(want.Start))
}

func (suite *ReportingServiceTestSuite) TestRunReport_UsernameResolvedToID() {
	ctx := context.Background()
	alice := &domain.User{UserID: "alice-id", Username: "alice"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(alice, nil).Once()

	var captured domain.ServiceLogFilter
	suite.mockLogRepo.ListForReportFn = func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
		captured = filter
		return nil, nil
	}

	_, err := suite.service.RunReport(ctx, domain.ReportCriteria{
		Period:   domain.PeriodThisMonth,
		Username: "alice",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(captured.UserID)
	suite.Equal("alice-id", *captured.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestRunReport_AllUsersSentinelSkipsLookup() {
	ctx := context.Background()
	var captured domain.ServiceLogFilter
	suite.mockLogRepo.ListForReportFn = func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
		captured = filter
		return nil, nil
	}

	_, err := suite.service.RunReport(ctx, domain.ReportCriteria{
		Period:   domain.PeriodThisMonth,
		Username: domain.UsernameAll,
	})

	suite.Require().NoError(err)
	suite.Nil(captured.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestRunReport_UnknownUsername() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.RunReport(ctx, domain.ReportCriteria{
		Period:   domain.PeriodThisWeek,
		Username: "ghost",
	})

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestRunReport_InvalidPeriod() {
	report, err := suite.service.RunReport(context.Background(), domain.ReportCriteria{Period: "this week"})

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestRunReport_CustomPeriodRequiresBounds() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.RunReport(context.Background(), domain.ReportCriteria{
		Period:     domain.PeriodCustom,
		CustomFrom: &from,
	})

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestRunReport_DateOnlyCustomBoundsSpanWholeDays() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	var captured domain.ServiceLogFilter
	suite.mockLogRepo.ListForReportFn = func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
		captured = filter
		return nil, nil
	}

	_, err := suite.service.RunReport(ctx, domain.ReportCriteria{
		Period:             domain.PeriodCustom,
		CustomFrom:         &from,
		CustomTo:           &to,
		CustomFromDateOnly: true,
		CustomToDateOnly:   true,
	})

	suite.Require().NoError(err)
	wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, suite.loc)
	wantEnd := time.Date(2024, 3, 6, 0, 0, 0, 0, suite.loc).Add(-time.Microsecond)
	suite.True(captured.Range.Start.Equal(wantStart), "start: got %v want %v", captured.Range.Start, wantStart)
	suite.True(captured.Range.End.Equal(wantEnd), "end: got %v want %v", captured.Range.End, wantEnd)
}

func (suite *ReportingServiceTestSuite) TestRunReport_ReversedCustomRangeIsEmptyNotError() {
	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.RunReport(context.Background(), domain.ReportCriteria{
		Period:     domain.PeriodCustom,
		CustomFrom: &from,
		CustomTo:   &to,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.False(report.HasData)
	suite.Empty(report.Rows)
	// The store is never queried for an interval that matches nothing.
	suite.mockLogRepo.AssertNotCalled(suite.T(), "ListForReport", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestRunReport_AggregatesLedgerRows() {
	ctx := context.Background()
	served := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	rows := []domain.ReportSourceRow{
		suite.sourceRow("log-1", "alice", "50", 4000, 500, served),
		suite.sourceRow("log-2", "alice", "50", 2000, 0, served.Add(time.Hour)),
	}
	suite.mockLogRepo.ListForReportFn = func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
		return rows, nil
	}

	report, err := suite.service.RunReport(ctx, domain.ReportCriteria{Period: domain.PeriodThisWeek})

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.HasData)
	suite.Len(report.Rows, 2)
	suite.Equal(2, report.Grand.Entries)
	suite.Equal(int64(6000), report.Grand.AmountCents)
	suite.Equal(int64(500), report.Grand.TipCents)
	// 6000 at 50 percent plus 500 tip.
	suite.True(report.Grand.TotalCents.Equal(decimal.NewFromInt(3500)), "got %s", report.Grand.TotalCents)
}

func (suite *ReportingServiceTestSuite) TestRunReport_PaymentTypeFilterPassedThrough() {
	ctx := context.Background()
	cash := domain.PaymentCash
	var captured domain.ServiceLogFilter
	suite.mockLogRepo.ListForReportFn = func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
		captured = filter
		return nil, nil
	}

	_, err := suite.service.RunReport(ctx, domain.ReportCriteria{
		Period:      domain.PeriodLastMonth,
		PaymentType: &cash,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(captured.PaymentType)
	suite.Equal(domain.PaymentCash, *captured.PaymentType)
}

func (suite *ReportingServiceTestSuite) TestExportReportCSV() {
	ctx := context.Background()
	served := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	suite.mockLogRepo.ListForReportFn = func(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
		return []domain.ReportSourceRow{
			suite.sourceRow("log-1", "alice", "50", 4000, 500, served),
		}, nil
	}

	data, err := suite.service.ExportReportCSV(ctx, domain.ReportCriteria{Period: domain.PeriodThisWeek})

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Require().Len(lines, 2)
	suite.True(strings.HasPrefix(lines[0], "Date & Time,User,Service"))
	suite.Contains(lines[1], "alice")
	suite.Contains(lines[1], "25.00")
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
