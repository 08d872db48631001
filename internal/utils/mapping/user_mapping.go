package mapping

import (
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	"github.com/svctracker/service_tracker_app/internal/models"
)

// ToModelUser converts a domain User to a model User. The password hash is
// not part of the domain entity and must be set by the caller when relevant.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:            d.UserID,
		Username:          d.Username,
		Role:              string(d.Role),
		ServicePercentage: d.ServicePercentage,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
		DeletedAt:         d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User. The password hash is
// deliberately dropped.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:            m.UserID,
		Username:          m.Username,
		Role:              domain.UserRole(m.Role),
		ServicePercentage: m.ServicePercentage,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
		DeletedAt:         m.DeletedAt,
	}
}
