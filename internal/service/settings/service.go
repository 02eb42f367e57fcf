package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// Service manages the salon's business configuration
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService creates the configuration service
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the current configuration
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// Update replaces business hours and slot interval. The holiday set is kept:
// it is managed through AddHoliday/RemoveHoliday. An invalid configuration is
// rejected before anything is written.
func (s *Service) Update(ctx context.Context, hours domain.BusinessHours, slotIntervalMinutes int) (*domain.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to load current settings: %v", err)
		return nil, fmt.Errorf("%w: Update - failed to load settings: %v", ErrInternal, err)
	}

	proposed := &domain.Settings{
		BusinessHours:       hours,
		SlotIntervalMinutes: slotIntervalMinutes,
		Holidays:            current.Holidays,
	}
	if err := proposed.Validate(); err != nil {
		s.logger.Warn("Update: rejected configuration: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	updated, err := s.settingsRepo.Update(ctx, proposed)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: business hours %d-%d, interval %d min",
		hours.StartHour, hours.EndHour, slotIntervalMinutes)
	return updated, nil
}

// AddHoliday marks a date as closed. Adding a date twice is a no-op.
func (s *Service) AddHoliday(ctx context.Context, date time.Time) (*domain.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("AddHoliday: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: AddHoliday - failed to load settings: %v", ErrInternal, err)
	}

	if current.IsHoliday(date) {
		s.logger.Info("AddHoliday: %s already a holiday", date.Format(domain.DateFormat))
		return current, nil
	}

	current.Holidays = append(current.Holidays, date)
	updated, err := s.settingsRepo.Update(ctx, current)
	if err != nil {
		s.logger.Error("AddHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddHoliday: added %s", date.Format(domain.DateFormat))
	return updated, nil
}

// RemoveHoliday reopens a date
func (s *Service) RemoveHoliday(ctx context.Context, date time.Time) (*domain.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("RemoveHoliday: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: RemoveHoliday - failed to load settings: %v", ErrInternal, err)
	}

	y, m, d := date.Date()
	kept := make([]time.Time, 0, len(current.Holidays))
	removed := false
	for _, h := range current.Holidays {
		hy, hm, hd := h.Date()
		if y == hy && m == hm && d == hd {
			removed = true
			continue
		}
		kept = append(kept, h)
	}
	if !removed {
		s.logger.Warn("RemoveHoliday: %s is not a holiday", date.Format(domain.DateFormat))
		return nil, ErrHolidayNotFound
	}

	current.Holidays = kept
	updated, err := s.settingsRepo.Update(ctx, current)
	if err != nil {
		s.logger.Error("RemoveHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: RemoveHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveHoliday: removed %s", date.Format(domain.DateFormat))
	return updated, nil
}
