package dto

import (
	"github.com/shopspring/decimal"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a new staff account.
type CreateUserRequest struct {
	Username          string          `json:"username" binding:"required,min=2,max=50"`
	Password          string          `json:"password" binding:"required,min=8"`
	Role              domain.UserRole `json:"role" binding:"required,oneof=user admin"`
	ServicePercentage decimal.Decimal `json:"servicePercentage"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Username          *string          `json:"username" binding:"omitempty,min=2,max=50"`
	Role              *domain.UserRole `json:"role" binding:"omitempty,oneof=user admin"`
	ServicePercentage *decimal.Decimal `json:"servicePercentage"`
	IsActive          *bool            `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
