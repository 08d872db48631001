package repositories

import (
	"context"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// ServiceLogReader defines the ledger store's read contract.
type ServiceLogReader interface {
	// ListForReport retrieves raw log rows joined with the owning user's
	// current percentage and catalog fields, matching the filter, ordered
	// ascending by service timestamp. No match yields an empty slice, not
	// an error. Orphaned rows come back flagged, never dropped.
	ListForReport(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error)

	// FindRecent retrieves the most recently created log rows with their
	// joins, newest first, for the admin maintenance view.
	FindRecent(ctx context.Context, limit int) ([]domain.ReportSourceRow, error)
}

// ServiceLogWriter defines write operations on the ledger.
type ServiceLogWriter interface {
	// SaveServiceLog persists a new ledger entry. The timestamp must
	// already be normalized to UTC.
	SaveServiceLog(ctx context.Context, log domain.ServiceLog) error

	// DeleteServiceLog removes a ledger entry permanently.
	DeleteServiceLog(ctx context.Context, logID string) error
}

// ServiceLogRepositoryFacade combines the ledger repository interfaces.
type ServiceLogRepositoryFacade interface {
	ServiceLogReader
	ServiceLogWriter
}
