package list_appointments

import (
	"context"
	"time"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

type AppointmentsService interface {
	List(ctx context.Context, date *time.Time) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
