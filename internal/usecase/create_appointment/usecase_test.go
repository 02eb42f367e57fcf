package create_appointment

import (
	"context"
	"errors"
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
	createFn              func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	getByDateFn           func(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	updateCalendarEventFn func(ctx context.Context, id uuid.UUID, eventID string) error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	return f.createFn(ctx, appt)
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.getByDateFn(ctx, date)
}

func (f *fakeAppointmentRepo) UpdateCalendarEvent(ctx context.Context, id uuid.UUID, eventID string) error {
	return f.updateCalendarEventFn(ctx, id, eventID)
}

type fakeServiceRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return f.getByIDFn(ctx, id)
}

type fakeCalendarClient struct {
	createEventFn func(ctx context.Context, appt *domain.Appointment) (string, error)
}

func (f *fakeCalendarClient) CreateEvent(ctx context.Context, appt *domain.Appointment) (string, error) {
	return f.createEventFn(ctx, appt)
}

type fakeReminderClient struct {
	scheduleFn func(ctx context.Context, appt *domain.Appointment, leadMinutes int) error
}

func (f *fakeReminderClient) Schedule(ctx context.Context, appt *domain.Appointment, leadMinutes int) error {
	return f.scheduleFn(ctx, appt, leadMinutes)
}

// fakeTxManager runs the callback inline, no real transaction
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func passthroughCreate(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	return appt, nil
}

func haircut(duration int) *fakeServiceRepo {
	return &fakeServiceRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
			return &domain.Service{ID: id, Name: "Haircut", DurationMinutes: duration}, nil
		},
	}
}

func happyCalendar() *fakeCalendarClient {
	return &fakeCalendarClient{
		createEventFn: func(ctx context.Context, appt *domain.Appointment) (string, error) {
			return "evt-123", nil
		},
	}
}

func happyReminders() *fakeReminderClient {
	return &fakeReminderClient{
		scheduleFn: func(ctx context.Context, appt *domain.Appointment, leadMinutes int) error {
			return nil
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	serviceID := uuid.New()
	baseRequest := func() *Request {
		return &Request{
			ClientName: "Maria",
			ServiceID:  serviceID,
			Date:       day,
			StartTime:  types.TimeString("10:00"),
		}
	}

	t.Run("creates appointment with computed end time and snapshot", func(t *testing.T) {
		var stored *domain.Appointment
		apptRepo := &fakeAppointmentRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				return nil, nil
			},
			createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
				stored = appt
				return passthroughCreate(ctx, appt)
			},
			updateCalendarEventFn: func(ctx context.Context, id uuid.UUID, eventID string) error {
				return nil
			},
		}

		uc := NewUseCase(apptRepo, haircut(60), happyCalendar(), happyReminders(), fakeTxManager{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.NotEqual(t, uuid.Nil, stored.ID)
		assert.Equal(t, types.TimeString("11:00"), stored.EndTime)
		assert.Equal(t, "Haircut", stored.ServiceName)
		assert.True(t, resp.CalendarSynced)
		require.NotNil(t, resp.Appointment.CalendarEventID)
		assert.Equal(t, "evt-123", *resp.Appointment.CalendarEventID)
	})

	t.Run("overlapping appointment is rejected", func(t *testing.T) {
		apptRepo := &fakeAppointmentRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				return []*domain.Appointment{{
					ID:        uuid.New(),
					Date:      day,
					StartTime: "10:30",
					EndTime:   "11:30",
				}}, nil
			},
			createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
				t.Fatal("create must not be called on conflict")
				return nil, nil
			},
		}

		uc := NewUseCase(apptRepo, haircut(60), happyCalendar(), happyReminders(), fakeTxManager{}, noopLogger{})

		_, err := uc.Execute(context.Background(), baseRequest())
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("back to back appointment is accepted", func(t *testing.T) {
		apptRepo := &fakeAppointmentRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				return []*domain.Appointment{{
					ID:        uuid.New(),
					Date:      day,
					StartTime: "11:00",
					EndTime:   "12:00",
				}}, nil
			},
			createFn: passthroughCreate,
			updateCalendarEventFn: func(ctx context.Context, id uuid.UUID, eventID string) error {
				return nil
			},
		}

		uc := NewUseCase(apptRepo, haircut(60), happyCalendar(), happyReminders(), fakeTxManager{}, noopLogger{})

		_, err := uc.Execute(context.Background(), baseRequest())
		assert.NoError(t, err)
	})

	t.Run("appointment running past midnight is rejected", func(t *testing.T) {
		apptRepo := &fakeAppointmentRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				return nil, nil
			},
		}

		uc := NewUseCase(apptRepo, haircut(60), happyCalendar(), happyReminders(), fakeTxManager{}, noopLogger{})

		req := baseRequest()
		req.StartTime = types.TimeString("23:30")
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("unknown service maps to not found", func(t *testing.T) {
		svcRepo := &fakeServiceRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
				return nil, serviceRepo.ErrServiceNotFound
			},
		}
		uc := NewUseCase(&fakeAppointmentRepo{}, svcRepo, happyCalendar(), happyReminders(), fakeTxManager{}, noopLogger{})

		_, err := uc.Execute(context.Background(), baseRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("calendar failure does not fail the booking", func(t *testing.T) {
		apptRepo := &fakeAppointmentRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				return nil, nil
			},
			createFn: passthroughCreate,
		}
		calendar := &fakeCalendarClient{
			createEventFn: func(ctx context.Context, appt *domain.Appointment) (string, error) {
				return "", errors.New("bridge down")
			},
		}

		uc := NewUseCase(apptRepo, haircut(30), calendar, happyReminders(), fakeTxManager{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)
		assert.False(t, resp.CalendarSynced)
		assert.Nil(t, resp.Appointment.CalendarEventID)
	})

	t.Run("reminder failure does not fail the booking", func(t *testing.T) {
		apptRepo := &fakeAppointmentRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				return nil, nil
			},
			createFn: passthroughCreate,
			updateCalendarEventFn: func(ctx context.Context, id uuid.UUID, eventID string) error {
				return nil
			},
		}
		reminders := &fakeReminderClient{
			scheduleFn: func(ctx context.Context, appt *domain.Appointment, leadMinutes int) error {
				return errors.New("notification service down")
			},
		}

		uc := NewUseCase(apptRepo, haircut(30), happyCalendar(), reminders, fakeTxManager{}, noopLogger{})

		resp, err := uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)
		assert.True(t, resp.CalendarSynced)
	})

	t.Run("missing client name is rejected", func(t *testing.T) {
		uc := NewUseCase(&fakeAppointmentRepo{}, haircut(30), happyCalendar(), happyReminders(), fakeTxManager{}, noopLogger{})

		req := baseRequest()
		req.ClientName = "  "
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
