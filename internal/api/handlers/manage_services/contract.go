package manage_services

import (
	"context"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

type ServicesService interface {
	Create(ctx context.Context, name string, durationMinutes int) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, name *string, durationMinutes *int) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
