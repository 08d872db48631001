package dto

import (
	"time"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// CreateServiceLogRequest defines the data needed to record a completed
// service. Exactly one of serviceID and amountCents must be provided; the
// variant check itself lives in the domain so the error message is uniform
// across transports.
type CreateServiceLogRequest struct {
	// UserID defaults to the caller; logging for another account requires
	// the admin role.
	UserID      string    `json:"userID"`
	ServedAt    time.Time `json:"servedAt" binding:"required"`
	Qty         int64     `json:"qty" binding:"required,gte=1"`
	ServiceID   *string   `json:"serviceID"`
	AmountCents *int64    `json:"amountCents"`
	TipCents    int64     `json:"tipCents" binding:"gte=0"`
	PaymentType string    `json:"paymentType" binding:"omitempty,paymenttype"`
}

// ListRecentLogsParams defines query parameters for the recent-entries view.
type ListRecentLogsParams struct {
	Limit int `form:"limit,default=20"`
}

// ServiceLogResponse is the outward representation of a ledger entry with
// its joins resolved.
type ServiceLogResponse struct {
	LogID       string    `json:"logID"`
	UserID      string    `json:"userID"`
	Username    string    `json:"username"`
	ServedAt    time.Time `json:"servedAt"`
	Qty         int64     `json:"qty"`
	ServiceID   *string   `json:"serviceID,omitempty"`
	ServiceName string    `json:"serviceName,omitempty"`
	AmountCents *int64    `json:"amountCents,omitempty"`
	TipCents    int64     `json:"tipCents"`
	PaymentType string    `json:"paymentType,omitempty"`
}

// ToServiceLogResponse converts a joined ledger row to its response DTO.
func ToServiceLogResponse(row domain.ReportSourceRow) ServiceLogResponse {
	return ServiceLogResponse{
		LogID:       row.Log.LogID,
		UserID:      row.Log.UserID,
		Username:    row.Username,
		ServedAt:    row.Log.ServedAt,
		Qty:         row.Log.Qty,
		ServiceID:   row.Log.ServiceID,
		ServiceName: row.ServiceName,
		AmountCents: row.Log.AmountCents,
		TipCents:    row.Log.TipCents,
		PaymentType: string(row.Log.PaymentType),
	}
}

// ToListServiceLogResponse converts joined ledger rows to response DTOs.
func ToListServiceLogResponse(rows []domain.ReportSourceRow) []ServiceLogResponse {
	responses := make([]ServiceLogResponse, len(rows))
	for i, row := range rows {
		responses[i] = ToServiceLogResponse(row)
	}
	return responses
}
