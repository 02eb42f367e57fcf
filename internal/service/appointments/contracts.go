package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// AppointmentRepository is the appointments storage interface
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	UpdateAttendance(ctx context.Context, id uuid.UUID, status domain.AttendanceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CalendarClient removes mirrored events when an appointment is cancelled.
// Best-effort: a failure is logged, the cancellation still goes through.
type CalendarClient interface {
	DeleteEvent(ctx context.Context, eventID string) error
}

// ReminderClient withdraws the reminder of a cancelled appointment
type ReminderClient interface {
	Cancel(ctx context.Context, appointmentID string) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
