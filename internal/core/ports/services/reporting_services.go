package services

import (
	"context"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// ReportingSvcFacade defines operations for running earnings reports.
// Both operations resolve the criteria's period against the configured
// report zone, so the same criteria yield the same interval regardless of
// where the caller runs.
type ReportingSvcFacade interface {
	// RunReport resolves the criteria, queries the ledger, and returns the
	// fully aggregated report. An empty interval yields a report with
	// HasData false, not an error.
	RunReport(ctx context.Context, criteria domain.ReportCriteria) (*domain.Report, error)

	// ExportReportCSV runs the report and renders the flat view as CSV.
	ExportReportCSV(ctx context.Context, criteria domain.ReportCriteria) ([]byte, error)
}
