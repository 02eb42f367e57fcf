package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// AppointmentRepository is the slice of the appointments storage this use case needs
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByDate returns the appointments of a single day; inside a
	// transaction the rows are locked FOR UPDATE
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	UpdateCalendarEvent(ctx context.Context, id uuid.UUID, eventID string) error
}

// ServiceRepository resolves the booked service
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// CalendarClient mirrors appointments into an external calendar.
// Failures are logged and never abort a booking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, appt *domain.Appointment) (string, error)
}

// ReminderClient schedules client reminders. Best-effort, like the calendar.
type ReminderClient interface {
	Schedule(ctx context.Context, appt *domain.Appointment, leadMinutes int) error
}

// TransactionManager runs the conflict check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
