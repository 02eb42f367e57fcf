package update_attendance

import (
	"context"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

type AppointmentsService interface {
	RecordAttendance(ctx context.Context, id uuid.UUID, status domain.AttendanceStatus) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
