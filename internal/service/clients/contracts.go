package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// ClientRepository is the client registry storage interface
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
