package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	appointmentRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/appointment"
)

// Service covers the read, cancel and attendance side of the schedule.
// Booking goes through the dedicated use cases.
type Service struct {
	appointmentRepo AppointmentRepository
	calendarClient  CalendarClient
	reminderClient  ReminderClient
	logger          Logger
}

// NewService creates the appointments service
func NewService(
	appointmentRepo AppointmentRepository,
	calendarClient CalendarClient,
	reminderClient ReminderClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		calendarClient:  calendarClient,
		reminderClient:  reminderClient,
		logger:          logger,
	}
}

// GetByID returns a single appointment
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

// List returns the schedule, optionally narrowed to a single day
func (s *Service) List(ctx context.Context, date *time.Time) ([]*domain.Appointment, error) {
	var (
		appts []*domain.Appointment
		err   error
	)
	if date != nil {
		appts, err = s.appointmentRepo.GetByDate(ctx, *date)
	} else {
		appts, err = s.appointmentRepo.GetAll(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appts))
	return appts, nil
}

// Cancel deletes the appointment and withdraws its calendar event and
// reminder. Only this appointment goes: siblings of a recurring series stay.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to delete appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - failed to delete: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: deleted appointment id=%s", id)

	// Post-delete cleanup is best-effort
	if appt.CalendarEventID != nil {
		if err := s.calendarClient.DeleteEvent(ctx, *appt.CalendarEventID); err != nil {
			s.logger.Warn("Cancel: failed to delete calendar event %s for id=%s: %v",
				*appt.CalendarEventID, id, err)
		}
	}
	if err := s.reminderClient.Cancel(ctx, id.String()); err != nil {
		s.logger.Warn("Cancel: failed to cancel reminder for id=%s: %v", id, err)
	}

	return nil
}

// RecordAttendance marks whether the client showed up. The outcome can be
// recorded once: confirmed and missed are terminal.
func (s *Service) RecordAttendance(ctx context.Context, id uuid.UUID, status domain.AttendanceStatus) (*domain.Appointment, error) {
	if !status.IsValid() || status == domain.AttendanceUnset {
		s.logger.Warn("RecordAttendance: invalid status %q for id=%s", status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidAttendance, status)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("RecordAttendance: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("RecordAttendance: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: RecordAttendance - repository error: %v", ErrInternal, err)
	}

	if appt.HasAttendance() {
		s.logger.Warn("RecordAttendance: attendance already %q for id=%s", appt.AttendanceStatus, id)
		return nil, ErrAttendanceAlreadySet
	}

	if err := s.appointmentRepo.UpdateAttendance(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("RecordAttendance: failed to update id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: RecordAttendance - failed to update: %v", ErrInternal, err)
	}

	appt.AttendanceStatus = status
	s.logger.Info("RecordAttendance: appointment id=%s marked %s", id, status)
	return appt, nil
}
