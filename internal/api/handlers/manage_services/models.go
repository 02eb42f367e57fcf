package manage_services

import (
	"time"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// CreateServiceRequest is the HTTP request model for adding a service
type CreateServiceRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// UpdateServiceRequest carries the mutable fields; absent fields are kept
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// ServiceResponse is the wire form of a catalog entry
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// FromDomainService converts a catalog entry to its wire form
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainServices converts the whole catalog
func FromDomainServices(services []*domain.Service) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return out
}
