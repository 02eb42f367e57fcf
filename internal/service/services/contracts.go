package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// ServiceRepository is the service catalog storage interface
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetAll(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, name *string, durationMinutes *int) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
