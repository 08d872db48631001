package dto

import (
	"github.com/shopspring/decimal"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// UserResponse is the outward representation of a staff account. The
// credential hash never leaves the repository layer.
type UserResponse struct {
	UserID            string          `json:"userID"`
	Username          string          `json:"username"`
	Role              domain.UserRole `json:"role"`
	ServicePercentage decimal.Decimal `json:"servicePercentage"`
	IsActive          bool            `json:"isActive"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:            user.UserID,
		Username:          user.Username,
		Role:              user.Role,
		ServicePercentage: user.ServicePercentage,
		IsActive:          user.IsActive,
	}
}
