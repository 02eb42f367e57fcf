package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	serviceRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/service"
	"github.com/salao-digital/salon-scheduler/pkg/types"
)

type fakeAppointmentRepo struct {
	getByDateFn func(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.getByDateFn(ctx, date)
}

type fakeServiceRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return f.getByIDFn(ctx, id)
}

type fakeSettingsRepo struct {
	getFn func(ctx context.Context) (*domain.Settings, error)
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	return f.getFn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func defaultSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		getFn: func(ctx context.Context) (*domain.Settings, error) {
			return domain.DefaultSettings(), nil
		},
	}
}

func haircutRepo(duration int) *fakeServiceRepo {
	return &fakeServiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
			return &domain.Service{ID: id, Name: "Haircut", DurationMinutes: duration}, nil
		},
	}
}

func emptyDayRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
			return nil, nil
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	serviceID := uuid.New()

	t.Run("empty day yields a fully available grid", func(t *testing.T) {
		uc := NewUseCase(emptyDayRepo(), haircutRepo(60), defaultSettingsRepo(), noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: day, ServiceID: serviceID})
		require.NoError(t, err)

		// 08:00..17:00 every 30 minutes, 17:30 dropped for the hour-long service
		require.Len(t, resp.Slots, 19)
		assert.Equal(t, len(resp.Slots), domain.CountAvailable(resp.Slots))
		assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].Time)
		assert.Equal(t, types.TimeString("17:00"), resp.Slots[len(resp.Slots)-1].Time)
	})

	t.Run("holiday yields an empty grid", func(t *testing.T) {
		settingsRepo := &fakeSettingsRepo{
			getFn: func(ctx context.Context) (*domain.Settings, error) {
				s := domain.DefaultSettings()
				s.Holidays = []time.Time{day}
				return s, nil
			},
		}
		uc := NewUseCase(emptyDayRepo(), haircutRepo(60), settingsRepo, noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: day, ServiceID: serviceID})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("existing appointment marks overlapping slots unavailable", func(t *testing.T) {
		apptRepo := &fakeAppointmentRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				return []*domain.Appointment{{
					Date:      day,
					StartTime: "10:00",
					EndTime:   "11:00",
				}}, nil
			},
		}
		uc := NewUseCase(apptRepo, haircutRepo(30), defaultSettingsRepo(), noopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Date: day, ServiceID: serviceID})
		require.NoError(t, err)

		byTime := make(map[types.TimeString]bool, len(resp.Slots))
		for _, s := range resp.Slots {
			byTime[s.Time] = s.Available
		}
		assert.True(t, byTime["09:00"])
		assert.False(t, byTime["10:00"])
		assert.False(t, byTime["10:30"])
		assert.True(t, byTime["11:00"])
	})

	t.Run("unknown service maps to not found", func(t *testing.T) {
		svcRepo := &fakeServiceRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
				return nil, serviceRepo.ErrServiceNotFound
			},
		}
		uc := NewUseCase(emptyDayRepo(), svcRepo, defaultSettingsRepo(), noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: day, ServiceID: serviceID})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid input is rejected before any repository call", func(t *testing.T) {
		uc := NewUseCase(emptyDayRepo(), haircutRepo(30), defaultSettingsRepo(), noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: time.Time{}, ServiceID: serviceID})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), &Request{Date: day, ServiceID: uuid.Nil})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
