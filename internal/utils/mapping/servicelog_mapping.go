package mapping

import (
	"database/sql"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
	"github.com/svctracker/service_tracker_app/internal/models"
)

// ToModelServiceLog converts a domain ServiceLog to a model ServiceLog.
// The timestamp is normalized to UTC on the way in.
func ToModelServiceLog(d domain.ServiceLog) models.ServiceLog {
	m := models.ServiceLog{
		LogID:       d.LogID,
		UserID:      d.UserID,
		ServedAt:    d.ServedAt.UTC(),
		Qty:         d.Qty,
		TipCents:    d.TipCents,
		PaymentType: toNullString(string(d.PaymentType)),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.ServiceID != nil {
		m.ServiceID = sql.NullString{String: *d.ServiceID, Valid: true}
	}
	if d.AmountCents != nil {
		m.AmountCents = sql.NullInt64{Int64: *d.AmountCents, Valid: true}
	}
	return m
}

// ToDomainServiceLog converts a model ServiceLog to a domain ServiceLog
func ToDomainServiceLog(m models.ServiceLog) domain.ServiceLog {
	d := domain.ServiceLog{
		LogID:       m.LogID,
		UserID:      m.UserID,
		ServedAt:    m.ServedAt.UTC(),
		Qty:         m.Qty,
		TipCents:    m.TipCents,
		PaymentType: domain.PaymentType(m.PaymentType.String),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ServiceID.Valid {
		serviceID := m.ServiceID.String
		d.ServiceID = &serviceID
	}
	if m.AmountCents.Valid {
		amount := m.AmountCents.Int64
		d.AmountCents = &amount
	}
	return d
}
