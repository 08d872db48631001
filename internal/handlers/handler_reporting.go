package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	portssvc "github.com/svctracker/service_tracker_app/internal/core/ports/services"
	"github.com/svctracker/service_tracker_app/internal/dto"
	"github.com/svctracker/service_tracker_app/internal/middleware"
)

// reportingHandler handles HTTP requests related to earnings reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	reportLocation   *time.Location
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade, loc *time.Location) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		reportLocation:   loc,
	}
}

// RegisterReportingRoutes registers routes related to earnings reports.
// Admins report across all users; everyone else is pinned to their own rows.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, loc *time.Location) {
	h := newReportingHandler(reportingService, loc)

	reports := rg.Group("/reports")
	{
		reports.POST("/run", h.runReport)
		reports.POST("/export", h.exportReport)
	}
}

// criteriaForCaller narrows the requested criteria for non-admin callers so a
// report can never expose another user's earnings.
func criteriaForCaller(c *gin.Context, req dto.RunReportRequest) (domain.ReportCriteria, bool) {
	criteria := req.ToReportCriteria()

	role, _ := middleware.GetUserRoleFromContext(c)
	if role == "admin" {
		return criteria, true
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return criteria, false
	}
	criteria.UserID = userID
	criteria.Username = ""
	return criteria, true
}

// runReport godoc
// @Summary Run an earnings report
// @Description Resolves the requested period against the report timezone, aggregates matching ledger entries, and returns the flat rows, per-user summaries, grouped subtotals, and grand totals. Non-admin callers only see their own rows.
// @Tags reports
// @Accept json
// @Produce json
// @Param criteria body dto.RunReportRequest true "Report criteria"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid criteria"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/run [post]
func (h *reportingHandler) runReport(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.RunReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for report criteria", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report criteria: " + err.Error()})
		return
	}

	criteria, ok := criteriaForCaller(c, req)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("period", req.Period), slog.String("username", req.Username))
	logger.Info("Received request to run report")

	report, err := h.reportingService.RunReport(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid report criteria", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	logger.Info("Report generated successfully", slog.Int("row_count", len(report.Rows)), slog.Bool("has_data", report.HasData))
	c.JSON(http.StatusOK, dto.ToReportResponse(report, h.reportLocation))
}

// exportReport godoc
// @Summary Export an earnings report as CSV
// @Description Runs the report with the given criteria and streams the flat view as a CSV attachment. Non-admin callers only see their own rows.
// @Tags reports
// @Accept json
// @Produce text/csv
// @Param criteria body dto.RunReportRequest true "Report criteria"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]string "Invalid criteria"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export report"
// @Security BearerAuth
// @Router /reports/export [post]
func (h *reportingHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.RunReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for report criteria", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report criteria: " + err.Error()})
		return
	}

	criteria, ok := criteriaForCaller(c, req)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("period", req.Period), slog.String("username", req.Username))
	logger.Info("Received request to export report")

	csvBytes, err := h.reportingService.ExportReportCSV(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid report criteria", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to export report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report"})
		}
		return
	}

	filename := fmt.Sprintf("earnings_report_%s.csv", time.Now().In(h.reportLocation).Format("20060102_150405"))
	logger.Info("Report exported successfully", slog.Int("bytes", len(csvBytes)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", csvBytes)
}
