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

// catalogService implements the CatalogSvcFacade interface
type catalogService struct {
	BaseService
	serviceRepo portsrepo.ServiceRepositoryFacade
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo portsrepo.ServiceRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{serviceRepo: serviceRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// GetServiceByID retrieves a catalog item by ID.
func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get catalog item", slog.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return service, nil
}

// ListServices retrieves catalog items ordered by name.
func (s *catalogService) ListServices(ctx context.Context, includeInactive bool) ([]domain.Service, error) {
	services, err := s.serviceRepo.FindServices(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog items")
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// CreateService adds a new catalog item.
func (s *catalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error) {
	if req.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %d", apperrors.ErrValidation, req.PriceCents)
	}

	now := time.Now()
	service := domain.Service{
		ServiceID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PriceCents:  req.PriceCents,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: service %q already exists", apperrors.ErrDuplicate, req.Name)
		}
		s.LogError(ctx, err, "Failed to save catalog item", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.LogInfo(ctx, "Catalog item created", slog.String("service_id", service.ServiceID), slog.String("name", service.Name))
	return &service, nil
}

// UpdateService applies the provided partial update to a catalog item.
// Price edits take effect on the next report run; ledger rows store only the
// catalog reference, never a price copy.
func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, requestingUserID string) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service for update: %w", err)
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}
	if req.PriceCents != nil {
		if *req.PriceCents <= 0 {
			return nil, fmt.Errorf("%w: price must be positive, got %d", apperrors.ErrValidation, *req.PriceCents)
		}
		service.PriceCents = *req.PriceCents
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = requestingUserID

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		s.LogError(ctx, err, "Failed to update catalog item", slog.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	s.LogInfo(ctx, "Catalog item updated", slog.String("service_id", serviceID))
	return service, nil
}

// SetServiceActive activates or deactivates a catalog item. Deactivation
// never cascades to ledger rows; historical reports flag affected rows.
func (s *catalogService) SetServiceActive(ctx context.Context, serviceID string, active bool, requestingUserID string) error {
	if _, err := s.serviceRepo.FindServiceByID(ctx, serviceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find service: %w", err)
	}

	if err := s.serviceRepo.SetServiceActive(ctx, serviceID, active, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to toggle catalog item", slog.String("service_id", serviceID))
		return fmt.Errorf("failed to set service active flag: %w", err)
	}

	s.LogInfo(ctx, "Catalog item active flag set", slog.String("service_id", serviceID), slog.Bool("active", active))
	return nil
}
