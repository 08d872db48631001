package models

import (
	"database/sql"
	"time"
)

// Service represents a row in the services catalog table.
type Service struct {
	ServiceID   string         `db:"service_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	ImageURL    sql.NullString `db:"image_url"`
	PriceCents  int64          `db:"price_cents"`
	IsActive    bool           `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
