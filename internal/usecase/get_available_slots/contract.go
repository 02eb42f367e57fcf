package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// AppointmentRepository is the slice of the appointments storage this use case needs
type AppointmentRepository interface {
	// GetByDate returns the appointments of a single day ordered by start time
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ServiceRepository resolves the requested service
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// SettingsRepository provides the salon's business configuration
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
