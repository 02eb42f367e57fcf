package create_recurring_series

import (
	"context"

	"github.com/salao-digital/salon-scheduler/internal/usecase/create_appointment"
)

// AppointmentCreator books a single appointment. The recurring series
// delegates each occurrence to it so both paths share one conflict check.
type AppointmentCreator interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
