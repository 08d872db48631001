package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	portsrepo "github.com/svctracker/service_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/svctracker/service_tracker_app/internal/core/ports/services"
	"github.com/svctracker/service_tracker_app/internal/dto"
)

// serviceLogService implements the ServiceLogSvcFacade interface
type serviceLogService struct {
	BaseService
	logRepo     portsrepo.ServiceLogRepositoryFacade
	userRepo    portsrepo.UserReader
	serviceRepo portsrepo.ServiceReader
}

// NewServiceLogService creates a new ledger service
func NewServiceLogService(
	logRepo portsrepo.ServiceLogRepositoryFacade,
	userRepo portsrepo.UserReader,
	serviceRepo portsrepo.ServiceReader,
) portssvc.ServiceLogSvcFacade {
	return &serviceLogService{
		logRepo:     logRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
	}
}

var _ portssvc.ServiceLogSvcFacade = (*serviceLogService)(nil)

// CreateServiceLog validates and records a completed service. References are
// checked at write time; reads tolerate rows whose references later vanish.
func (s *serviceLogService) CreateServiceLog(ctx context.Context, req dto.CreateServiceLogRequest, creatorUserID string) (*domain.ServiceLog, error) {
	now := time.Now()
	log := domain.ServiceLog{
		LogID:       uuid.NewString(),
		UserID:      req.UserID,
		ServedAt:    req.ServedAt.UTC(),
		Qty:         req.Qty,
		ServiceID:   req.ServiceID,
		AmountCents: req.AmountCents,
		TipCents:    req.TipCents,
		PaymentType: domain.PaymentType(req.PaymentType),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := log.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user %q", apperrors.ErrValidation, req.UserID)
		}
		return nil, fmt.Errorf("failed to verify user for log entry: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user %q is deactivated", apperrors.ErrValidation, user.Username)
	}

	if log.CatalogPriced() {
		service, err := s.serviceRepo.FindServiceByID(ctx, *log.ServiceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown service %q", apperrors.ErrValidation, *log.ServiceID)
			}
			return nil, fmt.Errorf("failed to verify service for log entry: %w", err)
		}
		if !service.IsActive {
			return nil, fmt.Errorf("%w: service %q is deactivated", apperrors.ErrValidation, service.Name)
		}
	}

	if err := s.logRepo.SaveServiceLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to save log entry", slog.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to create log entry: %w", err)
	}

	s.LogInfo(ctx, "Log entry created",
		slog.String("log_id", log.LogID),
		slog.String("user_id", log.UserID),
		slog.Int64("qty", log.Qty))
	return &log, nil
}

// ListRecentLogs retrieves the most recently created ledger entries.
func (s *serviceLogService) ListRecentLogs(ctx context.Context, limit int) ([]domain.ReportSourceRow, error) {
	rows, err := s.logRepo.FindRecent(ctx, clampLimit(limit))
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent log entries")
		return nil, fmt.Errorf("failed to list recent log entries: %w", err)
	}
	return rows, nil
}

// DeleteServiceLog removes a ledger entry permanently. There is no soft
// delete for ledger rows; a removed entry simply stops contributing to
// reports.
func (s *serviceLogService) DeleteServiceLog(ctx context.Context, logID string, requestingUserID string) error {
	if err := s.logRepo.DeleteServiceLog(ctx, logID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to delete log entry", slog.String("log_id", logID))
		return fmt.Errorf("failed to delete log entry: %w", err)
	}

	s.LogInfo(ctx, "Log entry deleted", slog.String("log_id", logID), slog.String("deleted_by", requestingUserID))
	return nil
}
