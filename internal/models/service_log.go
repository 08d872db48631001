package models

import (
	"database/sql"
	"time"
)

// ServiceLog represents a row in the service_logs ledger table.
// Exactly one of ServiceID (catalog-priced schema) or AmountCents
// (inline-amount schema) is set; a CHECK constraint enforces it.
type ServiceLog struct {
	LogID       string         `db:"log_id"`
	UserID      string         `db:"user_id"`
	ServedAt    time.Time      `db:"served_at"` // stored in UTC
	Qty         int64          `db:"qty"`
	ServiceID   sql.NullString `db:"service_id"`
	AmountCents sql.NullInt64  `db:"amount_cents"`
	TipCents    int64          `db:"tip_cents"`
	PaymentType sql.NullString `db:"payment_type"`
	AuditFields
}
