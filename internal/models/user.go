package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a row in the users table.
// Includes username and password hash for authentication.
type User struct {
	UserID            string          `db:"user_id"`
	Username          string          `db:"username"`
	PasswordHash      string          `db:"password_hash"`
	Role              string          `db:"role"`
	ServicePercentage decimal.Decimal `db:"service_percentage"`
	IsActive          bool            `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
