package domain

import "time"

// Service represents an item in the service catalog with a fixed unit price.
// Prices are stored in minor currency units (cents).
type Service struct {
	ServiceID   string `json:"serviceID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageURL,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	IsActive    bool   `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// Billable reports whether the catalog price can produce a charge.
func (s Service) Billable() bool {
	return s.PriceCents > 0
}
