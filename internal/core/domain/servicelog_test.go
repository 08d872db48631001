package domain_test

import (
	"testing"
	"time"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestServiceLog_Validate(t *testing.T) {
	servedAt := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	valid := domain.ServiceLog{
		LogID:       "log-1",
		UserID:      "user-1",
		ServedAt:    servedAt,
		Qty:         1,
		AmountCents: int64Ptr(4000),
		TipCents:    500,
		PaymentType: domain.PaymentCredit,
	}

	tests := []struct {
		name    string
		mutate  func(*domain.ServiceLog)
		wantErr string
	}{
		{
			name:   "valid inline-amount entry",
			mutate: func(l *domain.ServiceLog) {},
		},
		{
			name: "valid catalog-priced entry",
			mutate: func(l *domain.ServiceLog) {
				l.AmountCents = nil
				l.ServiceID = strPtr("svc-1")
			},
		},
		{
			name:    "missing user",
			mutate:  func(l *domain.ServiceLog) { l.UserID = "" },
			wantErr: "user reference",
		},
		{
			name:    "zero quantity",
			mutate:  func(l *domain.ServiceLog) { l.Qty = 0 },
			wantErr: "quantity must be at least 1",
		},
		{
			name:    "negative tip",
			mutate:  func(l *domain.ServiceLog) { l.TipCents = -1 },
			wantErr: "tip must not be negative",
		},
		{
			name: "both variants set",
			mutate: func(l *domain.ServiceLog) {
				l.ServiceID = strPtr("svc-1")
			},
			wantErr: "must not carry both",
		},
		{
			name: "neither variant set",
			mutate: func(l *domain.ServiceLog) {
				l.AmountCents = nil
			},
			wantErr: "requires either",
		},
		{
			name: "inline amount must be billable",
			mutate: func(l *domain.ServiceLog) {
				l.AmountCents = int64Ptr(0)
			},
			wantErr: "must be positive",
		},
		{
			name:    "unknown payment type",
			mutate:  func(l *domain.ServiceLog) { l.PaymentType = "Cheque" },
			wantErr: "unknown payment type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := valid
			tt.mutate(&log)
			err := log.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidPaymentType(t *testing.T) {
	assert.True(t, domain.ValidPaymentType(domain.PaymentCredit))
	assert.True(t, domain.ValidPaymentType(domain.PaymentCash))
	assert.True(t, domain.ValidPaymentType(domain.PaymentUnspecified))
	assert.False(t, domain.ValidPaymentType("cash"), "tags are case-sensitive")
}
