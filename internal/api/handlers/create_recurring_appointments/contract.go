package create_recurring_appointments

import (
	"context"

	createRecurringSeries "github.com/salao-digital/salon-scheduler/internal/usecase/create_recurring_series"
)

type CreateRecurringSeriesUseCase interface {
	Execute(ctx context.Context, req *createRecurringSeries.Request) (*createRecurringSeries.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
