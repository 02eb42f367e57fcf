package create_recurring_series

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/internal/usecase/create_appointment"
)

// UseCase books a recurring series: the anchor visit plus the expanded
// follow-up dates, attempted one by one in date order. A conflicting date is
// skipped, not fatal. The series fails only when not a single occurrence
// could be booked.
type UseCase struct {
	creator AppointmentCreator
	logger  Logger
}

// NewUseCase creates the use case
func NewUseCase(creator AppointmentCreator, logger Logger) *UseCase {
	return &UseCase{
		creator: creator,
		logger:  logger,
	}
}

// Execute books the series
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRecurringSeries: validation failed: %v", err)
		return nil, err
	}

	followUps, err := domain.ExpandDates(req.AnchorDate, req.Interval, req.Count)
	if err != nil {
		uc.logger.Warn("CreateRecurringSeries: failed to expand dates: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// The anchor visit opens the series and shares its group id
	dates := append([]time.Time{req.AnchorDate}, followUps...)

	groupID := uuid.New()
	uc.logger.Info("CreateRecurringSeries: group=%s, client=%s, service=%s, interval=%s, count=%d",
		groupID, req.ClientName, req.ServiceID, req.Interval, req.Count)

	created := make([]*domain.Appointment, 0, len(dates))
	for _, date := range dates {
		resp, err := uc.creator.Execute(ctx, &create_appointment.Request{
			ClientName:        req.ClientName,
			ClientID:          req.ClientID,
			ServiceID:         req.ServiceID,
			Date:              date,
			StartTime:         req.StartTime,
			RecurrenceGroupID: &groupID,
		})
		if err != nil {
			uc.logger.Warn("CreateRecurringSeries: group=%s, skipping %s: %v",
				groupID, date.Format(domain.DateFormat), err)
			continue
		}
		created = append(created, resp.Appointment)
	}

	if len(created) == 0 {
		uc.logger.Warn("CreateRecurringSeries: group=%s, all %d occurrences failed", groupID, len(dates))
		return nil, ErrNoAppointmentsCreated
	}

	uc.logger.Info("CreateRecurringSeries: group=%s, created %d of %d", groupID, len(created), len(dates))

	return &Response{
		GroupID:        groupID,
		RequestedCount: len(dates),
		CreatedCount:   len(created),
		Appointments:   created,
	}, nil
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.AnchorDate.IsZero() {
		return fmt.Errorf("%w: anchorDate is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if !req.Interval.IsValid() {
		return fmt.Errorf("%w: unknown interval %q", ErrInvalidInput, req.Interval)
	}
	if req.Count < 1 || req.Count > domain.MaxRecurrenceCount {
		return fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, domain.MaxRecurrenceCount)
	}
	return nil
}
