package mapping

import (
	"database/sql"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
	"github.com/svctracker/service_tracker_app/internal/models"
)

// ToModelService converts a domain Service to a model Service
func ToModelService(d domain.Service) models.Service {
	return models.Service{
		ServiceID:   d.ServiceID,
		Name:        d.Name,
		Description: toNullString(d.Description),
		ImageURL:    toNullString(d.ImageURL),
		PriceCents:  d.PriceCents,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainService converts a model Service to a domain Service
func ToDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:   m.ServiceID,
		Name:        m.Name,
		Description: m.Description.String,
		ImageURL:    m.ImageURL.String,
		PriceCents:  m.PriceCents,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
