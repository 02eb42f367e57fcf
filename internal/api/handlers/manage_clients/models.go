package manage_clients

import (
	"time"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// CreateClientRequest is the HTTP request model for registering a client
type CreateClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
	Tier  string  `json:"tier,omitempty"` // regular | vip, defaults to regular
}

// UpdateClientRequest carries the mutable fields; absent fields are kept
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
	Tier  *string `json:"tier,omitempty"`
}

// ClientResponse is the wire form of a registry entry
type ClientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Tier      string  `json:"tier"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromDomainClient converts a registry entry to its wire form
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Notes:     c.Notes,
		Tier:      string(c.Tier),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainClients converts the whole registry
func FromDomainClients(clients []*domain.Client) []*ClientResponse {
	out := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromDomainClient(c))
	}
	return out
}
