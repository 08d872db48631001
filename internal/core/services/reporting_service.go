package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	portsrepo "github.com/svctracker/service_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/svctracker/service_tracker_app/internal/core/ports/services"
	"github.com/svctracker/service_tracker_app/internal/utils/export"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	logRepo  portsrepo.ServiceLogReader
	userRepo portsrepo.UserReader
	loc      *time.Location
	now      func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock overrides the reference clock used to resolve quick periods.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service. All period resolution
// runs in loc, the fixed report zone, regardless of the server's zone.
func NewReportingService(
	logRepo portsrepo.ServiceLogReader,
	userRepo portsrepo.UserReader,
	loc *time.Location,
	options ...ReportingServiceOption,
) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		logRepo:  logRepo,
		userRepo: userRepo,
		loc:      loc,
		now:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// resolveRange turns the criteria's period into a concrete UTC interval.
func (s *reportingService) resolveRange(criteria domain.ReportCriteria) (domain.TimeRange, error) {
	if !domain.ValidQuickPeriod(criteria.Period) {
		return domain.TimeRange{}, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, criteria.Period)
	}

	if criteria.Period == domain.PeriodCustom {
		if criteria.CustomFrom == nil || criteria.CustomTo == nil {
			return domain.TimeRange{}, fmt.Errorf("%w: custom period requires both from and to", apperrors.ErrValidation)
		}
		from := *criteria.CustomFrom
		if criteria.CustomFromDateOnly {
			from = domain.DefaultStartOfDay(from.Year(), from.Month(), from.Day(), s.loc)
		}
		to := *criteria.CustomTo
		if criteria.CustomToDateOnly {
			to = domain.DefaultEndOfDay(to.Year(), to.Month(), to.Day(), s.loc)
		}
		return domain.CustomRange(from, to, s.loc), nil
	}

	return domain.ResolveQuickPeriod(criteria.Period, s.now(), s.loc), nil
}

// resolveFilter builds the store query from the criteria, translating the
// username filter into a stable user ID.
func (s *reportingService) resolveFilter(ctx context.Context, criteria domain.ReportCriteria, rng domain.TimeRange) (domain.ServiceLogFilter, error) {
	filter := domain.ServiceLogFilter{Range: rng}

	switch {
	case criteria.UserID != "":
		userID := criteria.UserID
		filter.UserID = &userID
	case !criteria.FilterAllUsers():
		user, err := s.userRepo.FindUserByUsername(ctx, criteria.Username)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return filter, fmt.Errorf("%w: unknown user %q", apperrors.ErrValidation, criteria.Username)
			}
			return filter, fmt.Errorf("failed to resolve user filter: %w", err)
		}
		filter.UserID = &user.UserID
	}

	if criteria.ServiceID != "" {
		serviceID := criteria.ServiceID
		filter.ServiceID = &serviceID
	}
	if criteria.PaymentType != nil {
		if !domain.ValidPaymentType(*criteria.PaymentType) {
			return filter, fmt.Errorf("%w: unknown payment type %q", apperrors.ErrValidation, *criteria.PaymentType)
		}
		filter.PaymentType = criteria.PaymentType
	}

	return filter, nil
}

// RunReport resolves the criteria, queries the ledger, and aggregates the
// result. An empty interval short-circuits to an empty report without
// touching the store.
func (s *reportingService) RunReport(ctx context.Context, criteria domain.ReportCriteria) (*domain.Report, error) {
	rng, err := s.resolveRange(criteria)
	if err != nil {
		return nil, err
	}

	if rng.IsEmpty() {
		report := domain.Aggregate(nil)
		report.Range = rng
		return &report, nil
	}

	filter, err := s.resolveFilter(ctx, criteria, rng)
	if err != nil {
		return nil, err
	}

	src, err := s.logRepo.ListForReport(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to query ledger for report",
			slog.Time("start", rng.Start),
			slog.Time("end", rng.End))
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}

	report := domain.Aggregate(domain.ComputeRows(src, s.loc))
	report.Range = rng

	s.LogInfo(ctx, "Report generated",
		slog.String("period", string(criteria.Period)),
		slog.Int("row_count", len(report.Rows)),
		slog.Int("entry_count", report.Grand.Entries))
	return &report, nil
}

// ExportReportCSV runs the report and renders the flat view as CSV.
func (s *reportingService) ExportReportCSV(ctx context.Context, criteria domain.ReportCriteria) ([]byte, error) {
	report, err := s.RunReport(ctx, criteria)
	if err != nil {
		return nil, err
	}

	data, err := export.ReportCSVBytes(report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report CSV")
		return nil, fmt.Errorf("failed to render report csv: %w", err)
	}
	return data, nil
}
