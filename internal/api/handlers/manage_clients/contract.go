package manage_clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

type ClientsService interface {
	Create(ctx context.Context, name string, phone, notes *string, tier domain.ClientTier) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
