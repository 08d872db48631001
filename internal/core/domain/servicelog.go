package domain

import (
	"fmt"
	"time"
)

// PaymentType tags how a logged service was paid for.
type PaymentType string

const (
	PaymentCredit PaymentType = "Credit"
	PaymentCash   PaymentType = "Cash"
	// PaymentUnspecified covers legacy rows logged before payment tagging existed.
	PaymentUnspecified PaymentType = ""
)

// ValidPaymentType reports whether p is a member of the closed payment-type set.
func ValidPaymentType(p PaymentType) bool {
	switch p {
	case PaymentCredit, PaymentCash, PaymentUnspecified:
		return true
	}
	return false
}

// ServiceLog is one completed-service entry in the ledger.
//
// The amount source is a tagged variant: catalog-priced rows carry a ServiceID
// and derive their amount from the catalog price at read time, inline rows
// carry AmountCents directly. Exactly one of the two is set.
type ServiceLog struct {
	LogID    string    `json:"logID"` // Primary Key (UUID)
	UserID   string    `json:"userID"`
	ServedAt time.Time `json:"servedAt"` // absolute instant, normalized to UTC before persistence
	Qty      int64     `json:"qty"`      // >= 1; scales the unit amount for both variants

	// Catalog-priced variant.
	ServiceID *string `json:"serviceID,omitempty"`
	// Inline-amount variant, minor units.
	AmountCents *int64 `json:"amountCents,omitempty"`

	TipCents    int64       `json:"tipCents"` // >= 0
	PaymentType PaymentType `json:"paymentType,omitempty"`
	AuditFields
}

// CatalogPriced reports whether the entry derives its amount from the catalog.
func (l ServiceLog) CatalogPriced() bool {
	return l.ServiceID != nil
}

// Validate checks the ledger invariants for a log entry.
func (l ServiceLog) Validate() error {
	if l.UserID == "" {
		return fmt.Errorf("service log requires a user reference")
	}
	if l.ServedAt.IsZero() {
		return fmt.Errorf("service log requires a served-at timestamp")
	}
	if l.Qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", l.Qty)
	}
	if l.TipCents < 0 {
		return fmt.Errorf("tip must not be negative, got %d", l.TipCents)
	}
	if l.ServiceID != nil && l.AmountCents != nil {
		return fmt.Errorf("service log must not carry both a catalog reference and an inline amount")
	}
	if l.ServiceID == nil && l.AmountCents == nil {
		return fmt.Errorf("service log requires either a catalog reference or an inline amount")
	}
	if l.AmountCents != nil && *l.AmountCents <= 0 {
		return fmt.Errorf("inline amount must be positive to be billable, got %d", *l.AmountCents)
	}
	if !ValidPaymentType(l.PaymentType) {
		return fmt.Errorf("unknown payment type %q", l.PaymentType)
	}
	return nil
}
