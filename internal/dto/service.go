package dto

import (
	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// CreateServiceRequest defines the data needed to add a catalog item.
type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	ImageURL    string `json:"imageURL" binding:"omitempty,url"`
	PriceCents  int64  `json:"priceCents" binding:"required,gt=0"`
}

// UpdateServiceRequest defines the data allowed for updating a catalog item.
type UpdateServiceRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	ImageURL    *string `json:"imageURL" binding:"omitempty,url"`
	PriceCents  *int64  `json:"priceCents" binding:"omitempty,gt=0"`
	IsActive    *bool   `json:"isActive"`
}

// ListServicesParams defines query parameters for listing catalog items.
type ListServicesParams struct {
	IncludeInactive bool `form:"includeInactive,default=false"`
}

// ServiceResponse is the outward representation of a catalog item.
type ServiceResponse struct {
	ServiceID   string `json:"serviceID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageURL,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	IsActive    bool   `json:"isActive"`
}

// ToServiceResponse converts a domain.Service to its response DTO.
func ToServiceResponse(service *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:   service.ServiceID,
		Name:        service.Name,
		Description: service.Description,
		ImageURL:    service.ImageURL,
		PriceCents:  service.PriceCents,
		IsActive:    service.IsActive,
	}
}

// ToListServiceResponse converts a slice of domain.Service to response DTOs.
func ToListServiceResponse(services []domain.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(services))
	for i, svc := range services {
		responses[i] = ToServiceResponse(&svc)
	}
	return responses
}
