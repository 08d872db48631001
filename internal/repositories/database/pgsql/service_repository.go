package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	portsrepo "github.com/svctracker/service_tracker_app/internal/core/ports/repositories"
	"github.com/svctracker/service_tracker_app/internal/models"
	"github.com/svctracker/service_tracker_app/internal/utils/mapping"
)

type PgxServiceRepository struct {
	BaseRepository
}

func newPgxServiceRepository(db *pgxpool.Pool) portsrepo.ServiceRepositoryFacade {
	return &PgxServiceRepository{BaseRepository{Pool: db}}
}

// Ensure PgxServiceRepository implements portsrepo.ServiceRepositoryFacade
var _ portsrepo.ServiceRepositoryFacade = (*PgxServiceRepository)(nil)

const serviceColumns = `service_id, name, description, image_url, price_cents, is_active, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanService(row pgx.Row) (models.Service, error) {
	var m models.Service
	err := row.Scan(
		&m.ServiceID,
		&m.Name,
		&m.Description,
		&m.ImageURL,
		&m.PriceCents,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	m := mapping.ToModelService(service)
	query := `
        INSERT INTO services (service_id, name, description, image_url, price_cents, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ServiceID,
		m.Name,
		m.Description,
		m.ImageURL,
		m.PriceCents,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE service_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanService(r.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %s: %w", serviceID, err)
	}

	service := mapping.ToDomainService(m)
	return &service, nil
}

func (r *PgxServiceRepository) FindServices(ctx context.Context, includeInactive bool) ([]domain.Service, error) {
	query := `
        SELECT ` + serviceColumns + `
        FROM services
        WHERE deleted_at IS NULL
    `
	if !includeInactive {
		query += ` AND is_active`
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		m, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, mapping.ToDomainService(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", rows.Err())
	}

	return services, nil
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	m := mapping.ToModelService(service)
	query := `
        UPDATE services
        SET name = $1, description = $2, image_url = $3, price_cents = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
        WHERE service_id = $8 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Description,
		m.ImageURL,
		m.PriceCents,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ServiceID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to execute update service query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxServiceRepository) SetServiceActive(ctx context.Context, serviceID string, active bool, updatedAt time.Time, updatedBy string) error {
	query := `
        UPDATE services
        SET is_active = $1, last_updated_at = $2, last_updated_by = $3
        WHERE service_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, active, updatedAt, updatedBy, serviceID)
	if err != nil {
		return fmt.Errorf("failed to set service active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
