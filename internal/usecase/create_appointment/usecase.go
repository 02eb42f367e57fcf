package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	serviceRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/service"
)

// UseCase books a single appointment. The conflict check and the insert run
// in one serializable transaction so two concurrent bookings for the same
// slot cannot both succeed.
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	calendarClient  CalendarClient
	reminderClient  ReminderClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	calendarClient CalendarClient,
	reminderClient ReminderClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		calendarClient:  calendarClient,
		reminderClient:  reminderClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute books the appointment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: client=%s, service=%s, date=%s, time=%s",
		req.ClientName, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: start=%s duration=%d runs past midnight",
			req.StartTime, service.DurationMinutes)
		return nil, ErrInvalidTimeSlot
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Rows of the day are locked FOR UPDATE inside the transaction
		existing, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if domain.HasConflict(req.Date, req.StartTime, endTime, existing, nil) {
			uc.logger.Warn("CreateAppointment: conflict on %s at %s",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrTimeConflict
		}

		appt := &domain.Appointment{
			ID:                uuid.New(),
			ClientName:        req.ClientName,
			ClientID:          req.ClientID,
			ServiceID:         req.ServiceID,
			ServiceName:       service.Name,
			Date:              req.Date,
			StartTime:         req.StartTime,
			EndTime:           endTime,
			RecurrenceGroupID: req.RecurrenceGroupID,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s", result.ID)

	calendarSynced := uc.runPostCommitHooks(ctx, result)

	return &Response{
		Appointment:    result,
		CalendarSynced: calendarSynced,
	}, nil
}

// runPostCommitHooks mirrors the appointment into the calendar and schedules
// the reminder. Neither failure is surfaced: the booking already committed.
func (uc *UseCase) runPostCommitHooks(ctx context.Context, appt *domain.Appointment) bool {
	calendarSynced := false

	eventID, err := uc.calendarClient.CreateEvent(ctx, appt)
	if err != nil {
		uc.logger.Warn("CreateAppointment: calendar sync failed for id=%s: %v", appt.ID, err)
	} else {
		if err := uc.appointmentRepo.UpdateCalendarEvent(ctx, appt.ID, eventID); err != nil {
			uc.logger.Warn("CreateAppointment: failed to store calendar event id for id=%s: %v", appt.ID, err)
		} else {
			appt.CalendarEventID = &eventID
			calendarSynced = true
		}
	}

	if err := uc.reminderClient.Schedule(ctx, appt, domain.DefaultReminderLeadMin); err != nil {
		uc.logger.Warn("CreateAppointment: reminder scheduling failed for id=%s: %v", appt.ID, err)
	}

	return calendarSynced
}
