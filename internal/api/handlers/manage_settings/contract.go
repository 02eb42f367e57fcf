package manage_settings

import (
	"context"
	"time"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, hours domain.BusinessHours, slotIntervalMinutes int) (*domain.Settings, error)
	AddHoliday(ctx context.Context, date time.Time) (*domain.Settings, error)
	RemoveHoliday(ctx context.Context, date time.Time) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
