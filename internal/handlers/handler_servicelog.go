package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	portssvc "github.com/svctracker/service_tracker_app/internal/core/ports/services"
	"github.com/svctracker/service_tracker_app/internal/dto"
	"github.com/svctracker/service_tracker_app/internal/middleware"
)

// serviceLogHandler handles HTTP requests related to the ledger.
type serviceLogHandler struct {
	serviceLogService portssvc.ServiceLogSvcFacade
}

// newServiceLogHandler creates a new serviceLogHandler.
func newServiceLogHandler(sls portssvc.ServiceLogSvcFacade) *serviceLogHandler {
	return &serviceLogHandler{
		serviceLogService: sls,
	}
}

// registerServiceLogRoutes registers all ledger-related routes. Staff record
// their own entries; the maintenance views stay admin-only.
func registerServiceLogRoutes(rg *gin.RouterGroup, serviceLogService portssvc.ServiceLogSvcFacade) {
	h := newServiceLogHandler(serviceLogService)

	logs := rg.Group("/logs")
	{
		logs.POST("", h.createServiceLog)
		logs.GET("/recent", middleware.AdminRequired(), h.listRecentLogs)
		logs.DELETE("/:id", middleware.AdminRequired(), h.deleteServiceLog)
	}
}

// createServiceLog godoc
// @Summary Record a completed service
// @Description Records a ledger entry priced either from the catalog or by an inline amount. Omitting userID records against the caller; logging for another account requires the admin role.
// @Tags logs
// @Accept  json
// @Produce  json
// @Param   log body dto.CreateServiceLogRequest true "Log entry details"
// @Success 201 {object} dto.ServiceLogResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (logging for another account)"
// @Failure 500 {object} map[string]string "Failed to record log entry"
// @Security BearerAuth
// @Router /logs [post]
func (h *serviceLogHandler) createServiceLog(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateServiceLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create log request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if req.UserID == "" {
		req.UserID = creatorUserID
	}
	if req.UserID != creatorUserID {
		role, _ := middleware.GetUserRoleFromContext(c)
		if role != "admin" {
			logger.Warn("Non-admin attempted to log for another account", slog.String("target_user_id", req.UserID))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID), slog.String("target_user_id", req.UserID))
	logger.Info("Received request to record log entry")

	created, err := h.serviceLogService.CreateServiceLog(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid log entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record log entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record log entry"})
		}
		return
	}

	logger.Info("Log entry recorded successfully", slog.String("log_id", created.LogID))
	c.JSON(http.StatusCreated, dto.ServiceLogResponse{
		LogID:       created.LogID,
		UserID:      created.UserID,
		ServedAt:    created.ServedAt,
		Qty:         created.Qty,
		ServiceID:   created.ServiceID,
		AmountCents: created.AmountCents,
		TipCents:    created.TipCents,
		PaymentType: string(created.PaymentType),
	})
}

// listRecentLogs godoc
// @Summary List recent ledger entries
// @Description Retrieves the most recently recorded entries with user and service names resolved (admin only)
// @Tags logs
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Success 200 {array} dto.ServiceLogResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list log entries"
// @Security BearerAuth
// @Router /logs/recent [get]
func (h *serviceLogHandler) listRecentLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListRecentLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRecentLogs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.serviceLogService.ListRecentLogs(c.Request.Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to list recent log entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list log entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListServiceLogResponse(rows))
}

// deleteServiceLog godoc
// @Summary Delete a ledger entry
// @Description Removes a mistakenly recorded entry permanently (admin only)
// @Tags logs
// @Produce  json
// @Param   id path string true "Log ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Log entry not found"
// @Failure 500 {object} map[string]string "Failed to delete log entry"
// @Security BearerAuth
// @Router /logs/{id} [delete]
func (h *serviceLogHandler) deleteServiceLog(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	logID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("log_id", logID))
	logger.Info("Received request to delete log entry")

	err := h.serviceLogService.DeleteServiceLog(c.Request.Context(), logID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Log entry not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Log entry not found"})
		} else {
			logger.Error("Failed to delete log entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete log entry"})
		}
		return
	}

	logger.Info("Log entry deleted successfully")
	c.Status(http.StatusNoContent)
}
