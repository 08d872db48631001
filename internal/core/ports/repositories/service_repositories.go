package repositories

import (
	"context"
	"time"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// ServiceReader defines read operations for the service catalog
type ServiceReader interface {
	// FindServiceByID retrieves a catalog item by its ID.
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)

	// FindServices lists catalog items ordered by name. Inactive items are
	// included only when includeInactive is set.
	FindServices(ctx context.Context, includeInactive bool) ([]domain.Service, error)
}

// ServiceWriter defines write operations for the service catalog
type ServiceWriter interface {
	// SaveService persists a new catalog item.
	SaveService(ctx context.Context, service domain.Service) error

	// UpdateService updates an existing catalog item's details.
	UpdateService(ctx context.Context, service domain.Service) error

	// SetServiceActive toggles a catalog item's active flag.
	SetServiceActive(ctx context.Context, serviceID string, active bool, updatedAt time.Time, updatedBy string) error
}

// ServiceRepositoryFacade combines all catalog repository interfaces
type ServiceRepositoryFacade interface {
	ServiceReader
	ServiceWriter
}
