package services

import (
	"context"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
	"github.com/svctracker/service_tracker_app/internal/dto"
)

// CatalogReaderSvc defines read operations for the service catalog
type CatalogReaderSvc interface {
	// GetServiceByID retrieves a catalog item by ID.
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)

	// ListServices retrieves catalog items ordered by name.
	ListServices(ctx context.Context, includeInactive bool) ([]domain.Service, error)
}

// CatalogWriterSvc defines write operations for the service catalog
type CatalogWriterSvc interface {
	// CreateService adds a new catalog item.
	CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID string) (*domain.Service, error)

	// UpdateService updates an existing catalog item.
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, requestingUserID string) (*domain.Service, error)

	// SetServiceActive activates or deactivates a catalog item. Deactivation
	// never cascades to ledger rows that reference the item.
	SetServiceActive(ctx context.Context, serviceID string, active bool, requestingUserID string) error
}

// CatalogSvcFacade combines all catalog service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
