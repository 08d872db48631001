package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole identifies the capabilities of an account.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a staff account in the domain.
//
// ServicePercentage is the commission split applied to this user's logged
// service amounts. It is joined at report time, never copied into log entries,
// so editing it retroactively changes computed earnings on historical reports.
// That is intended behavior: earnings always reflect the current agreement.
type User struct {
	UserID            string          `json:"userID"` // Primary Key (UUID)
	Username          string          `json:"username"`
	Role              UserRole        `json:"role"`
	ServicePercentage decimal.Decimal `json:"servicePercentage"` // [0,100]
	IsActive          bool            `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

var (
	minPercentage = decimal.Zero
	maxPercentage = decimal.NewFromInt(100)
)

// ValidPercentage reports whether p is a usable commission percentage.
func ValidPercentage(p decimal.Decimal) bool {
	return p.GreaterThanOrEqual(minPercentage) && p.LessThanOrEqual(maxPercentage)
}
