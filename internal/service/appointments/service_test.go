package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	appointmentRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/appointment"
)

type fakeRepo struct {
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	getAllFn           func(ctx context.Context) ([]*domain.Appointment, error)
	getByDateFn        func(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	updateAttendanceFn func(ctx context.Context, id uuid.UUID, status domain.AttendanceStatus) error
	deleteFn           func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	return f.getAllFn(ctx)
}

func (f *fakeRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.getByDateFn(ctx, date)
}

func (f *fakeRepo) UpdateAttendance(ctx context.Context, id uuid.UUID, status domain.AttendanceStatus) error {
	return f.updateAttendanceFn(ctx, id, status)
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

type fakeCalendar struct {
	deleted []string
	err     error
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return f.err
}

type fakeReminders struct {
	cancelled []string
	err       error
}

func (f *fakeReminders) Cancel(ctx context.Context, appointmentID string) error {
	f.cancelled = append(f.cancelled, appointmentID)
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Cancel(t *testing.T) {
	id := uuid.New()
	eventID := "evt-42"

	storedAppt := func() *domain.Appointment {
		return &domain.Appointment{
			ID:              id,
			ClientName:      "Maria",
			CalendarEventID: &eventID,
		}
	}

	t.Run("deletes appointment and cleans up integrations", func(t *testing.T) {
		repo := &fakeRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
				return storedAppt(), nil
			},
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return nil
			},
		}
		calendar := &fakeCalendar{}
		reminders := &fakeReminders{}

		svc := NewService(repo, calendar, reminders, noopLogger{})
		require.NoError(t, svc.Cancel(context.Background(), id))

		assert.Equal(t, []string{eventID}, calendar.deleted)
		assert.Equal(t, []string{id.String()}, reminders.cancelled)
	})

	t.Run("calendar failure does not fail the cancellation", func(t *testing.T) {
		repo := &fakeRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
				return storedAppt(), nil
			},
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return nil
			},
		}
		calendar := &fakeCalendar{err: errors.New("bridge down")}
		reminders := &fakeReminders{}

		svc := NewService(repo, calendar, reminders, noopLogger{})
		assert.NoError(t, svc.Cancel(context.Background(), id))
	})

	t.Run("missing appointment maps to not found", func(t *testing.T) {
		repo := &fakeRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
				return nil, appointmentRepo.ErrAppointmentNotFound
			},
		}

		svc := NewService(repo, &fakeCalendar{}, &fakeReminders{}, noopLogger{})
		err := svc.Cancel(context.Background(), id)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("appointment without calendar event skips the bridge", func(t *testing.T) {
		repo := &fakeRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
				return &domain.Appointment{ID: id, ClientName: "Maria"}, nil
			},
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return nil
			},
		}
		calendar := &fakeCalendar{}

		svc := NewService(repo, calendar, &fakeReminders{}, noopLogger{})
		require.NoError(t, svc.Cancel(context.Background(), id))
		assert.Empty(t, calendar.deleted)
	})
}

func TestService_RecordAttendance(t *testing.T) {
	id := uuid.New()

	t.Run("records confirmed on an unset appointment", func(t *testing.T) {
		var updatedTo domain.AttendanceStatus
		repo := &fakeRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
				return &domain.Appointment{ID: id}, nil
			},
			updateAttendanceFn: func(ctx context.Context, id uuid.UUID, status domain.AttendanceStatus) error {
				updatedTo = status
				return nil
			},
		}

		svc := NewService(repo, &fakeCalendar{}, &fakeReminders{}, noopLogger{})
		appt, err := svc.RecordAttendance(context.Background(), id, domain.AttendanceConfirmed)
		require.NoError(t, err)

		assert.Equal(t, domain.AttendanceConfirmed, updatedTo)
		assert.Equal(t, domain.AttendanceConfirmed, appt.AttendanceStatus)
	})

	t.Run("recorded statuses are terminal", func(t *testing.T) {
		repo := &fakeRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
				return &domain.Appointment{ID: id, AttendanceStatus: domain.AttendanceMissed}, nil
			},
		}

		svc := NewService(repo, &fakeCalendar{}, &fakeReminders{}, noopLogger{})
		_, err := svc.RecordAttendance(context.Background(), id, domain.AttendanceConfirmed)
		assert.ErrorIs(t, err, ErrAttendanceAlreadySet)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeCalendar{}, &fakeReminders{}, noopLogger{})

		_, err := svc.RecordAttendance(context.Background(), id, domain.AttendanceStatus("maybe"))
		assert.ErrorIs(t, err, ErrInvalidAttendance)

		_, err = svc.RecordAttendance(context.Background(), id, domain.AttendanceUnset)
		assert.ErrorIs(t, err, ErrInvalidAttendance)
	})
}

func TestService_List(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	t.Run("without a date returns the full schedule", func(t *testing.T) {
		repo := &fakeRepo{
			getAllFn: func(ctx context.Context) ([]*domain.Appointment, error) {
				return []*domain.Appointment{{ID: uuid.New()}, {ID: uuid.New()}}, nil
			},
		}

		svc := NewService(repo, &fakeCalendar{}, &fakeReminders{}, noopLogger{})
		appts, err := svc.List(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, appts, 2)
	})

	t.Run("with a date narrows to that day", func(t *testing.T) {
		var queried time.Time
		repo := &fakeRepo{
			getByDateFn: func(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
				queried = date
				return nil, nil
			},
		}

		svc := NewService(repo, &fakeCalendar{}, &fakeReminders{}, noopLogger{})
		_, err := svc.List(context.Background(), &day)
		require.NoError(t, err)
		assert.Equal(t, day, queried)
	})
}
