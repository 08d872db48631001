package services

import (
	"context"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
	"github.com/svctracker/service_tracker_app/internal/dto"
)

// ServiceLogReaderSvc defines read operations for the ledger
type ServiceLogReaderSvc interface {
	// ListRecentLogs retrieves the most recently created ledger entries with
	// their joins resolved, newest first.
	ListRecentLogs(ctx context.Context, limit int) ([]domain.ReportSourceRow, error)
}

// ServiceLogWriterSvc defines write operations for the ledger
type ServiceLogWriterSvc interface {
	// CreateServiceLog validates and records a completed service.
	CreateServiceLog(ctx context.Context, req dto.CreateServiceLogRequest, creatorUserID string) (*domain.ServiceLog, error)

	// DeleteServiceLog removes a ledger entry permanently.
	DeleteServiceLog(ctx context.Context, logID string, requestingUserID string) error
}

// ServiceLogSvcFacade combines all ledger service interfaces
type ServiceLogSvcFacade interface {
	ServiceLogReaderSvc
	ServiceLogWriterSvc
}
