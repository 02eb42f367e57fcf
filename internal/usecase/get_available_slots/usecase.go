package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	serviceRepo "github.com/salao-digital/salon-scheduler/internal/infra/storage/service"
)

// UseCase computes the slot grid of a single day for a given service
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// Execute returns the day's slots for the requested service
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s, service=%s",
		req.Date.Format(domain.DateFormat), req.ServiceID)

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// Closed days produce an empty grid, not an error
	if settings.IsHoliday(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is a holiday", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:      req.Date,
			ServiceID: req.ServiceID,
			Slots:     []domain.TimeSlot{},
		}, nil
	}

	existing, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	grid := generateGrid(settings.BusinessHours, settings.SlotIntervalMinutes)
	slots := buildSlots(grid, service.DurationMinutes, settings.BusinessHours, existing)

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for date=%s, service=%s",
		len(slots), domain.CountAvailable(slots), req.Date.Format(domain.DateFormat), req.ServiceID)

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
