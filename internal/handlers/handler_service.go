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

// serviceHandler handles HTTP requests related to the service catalog.
type serviceHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newServiceHandler creates a new serviceHandler.
func newServiceHandler(cs portssvc.CatalogSvcFacade) *serviceHandler {
	return &serviceHandler{
		catalogService: cs,
	}
}

// registerServiceRoutes registers all catalog-related routes.
func registerServiceRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newServiceHandler(catalogService)

	services := rg.Group("/services")
	{
		services.GET("", h.listServices)
		services.GET("/:id", h.getService)
		services.POST("", middleware.AdminRequired(), h.createService)
		services.PUT("/:id", middleware.AdminRequired(), h.updateService)
		services.POST("/:id/activate", middleware.AdminRequired(), h.activateService)
		services.POST("/:id/deactivate", middleware.AdminRequired(), h.deactivateService)
	}
}

// createService godoc
// @Summary Create a catalog item
// @Description Adds a new offered service with its price (admin only)
// @Tags services
// @Accept  json
// @Produce  json
// @Param   service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Service already exists"
// @Failure 500 {object} map[string]string "Failed to create service"
// @Security BearerAuth
// @Router /services [post]
func (h *serviceHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create service request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create service", slog.String("name", req.Name))

	created, err := h.catalogService.CreateService(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Service already exists", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "Service already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid service details", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		}
		return
	}

	logger.Info("Service created successfully", slog.String("service_id", created.ServiceID))
	c.JSON(http.StatusCreated, dto.ToServiceResponse(created))
}

// getService godoc
// @Summary Get a catalog item by ID
// @Description Retrieves details for a specific catalog item
// @Tags services
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to retrieve service"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *serviceHandler) getService(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	serviceID := c.Param("id")

	service, err := h.catalogService.GetServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Service not found", slog.String("service_id", serviceID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		} else {
			logger.Error("Failed to get service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// listServices godoc
// @Summary List catalog items
// @Description Retrieves catalog items ordered by name. Inactive items are included only on request.
// @Tags services
// @Produce  json
// @Param   includeInactive query bool false "Include deactivated items" default(false)
// @Success 200 {array} dto.ServiceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list services"
// @Security BearerAuth
// @Router /services [get]
func (h *serviceHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListServicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListServices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	services, err := h.catalogService.ListServices(c.Request.Context(), params.IncludeInactive)
	if err != nil {
		logger.Error("Failed to list services", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListServiceResponse(services))
}

// updateService godoc
// @Summary Update a catalog item
// @Description Updates a catalog item's details, including its price (admin only)
// @Tags services
// @Accept  json
// @Produce  json
// @Param   id path string true "Service ID to update"
// @Param   service body dto.UpdateServiceRequest true "Service details to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to update service"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *serviceHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	serviceID := c.Param("id")
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("service_id", serviceID))
	logger.Info("Received request to update service")

	updated, err := h.catalogService.UpdateService(c.Request.Context(), serviceID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Service not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid service details", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		}
		return
	}

	logger.Info("Service updated successfully")
	c.JSON(http.StatusOK, dto.ToServiceResponse(updated))
}

// activateService godoc
// @Summary Activate a catalog item
// @Description Re-enables a deactivated catalog item (admin only)
// @Tags services
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to activate service"
// @Security BearerAuth
// @Router /services/{id}/activate [post]
func (h *serviceHandler) activateService(c *gin.Context) {
	h.setActive(c, true)
}

// deactivateService godoc
// @Summary Deactivate a catalog item
// @Description Hides a catalog item from new log entries. Existing ledger rows keep referencing it.
// @Tags services
// @Produce  json
// @Param   id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to deactivate service"
// @Security BearerAuth
// @Router /services/{id}/deactivate [post]
func (h *serviceHandler) deactivateService(c *gin.Context) {
	h.setActive(c, false)
}

func (h *serviceHandler) setActive(c *gin.Context, active bool) {
	logger := middleware.GetLoggerFromContext(c)
	serviceID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Logged-in user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("service_id", serviceID), slog.Bool("active", active))
	logger.Info("Received request to change service active flag")

	err := h.catalogService.SetServiceActive(c.Request.Context(), serviceID, active, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Service not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		} else {
			logger.Error("Failed to change service active flag", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change service active flag"})
		}
		return
	}

	logger.Info("Service active flag changed successfully")
	c.Status(http.StatusNoContent)
}
