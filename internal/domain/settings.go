package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidBusinessHours is returned when start/end hours are malformed
	ErrInvalidBusinessHours = errors.New("invalid business hours")

	// ErrInvalidSlotInterval is returned for a slot interval outside the allowed set
	ErrInvalidSlotInterval = errors.New("invalid slot interval")
)

// BusinessHours is the daily opening window in whole hours
type BusinessHours struct {
	StartHour int // 0-23
	EndHour   int // 0-23, strictly greater than StartHour
}

// Validate enforces hour ranges and start < end
func (h BusinessHours) Validate() error {
	if h.StartHour < MinBusinessHour || h.StartHour > MaxBusinessHour {
		return fmt.Errorf("%w: start hour %d out of range", ErrInvalidBusinessHours, h.StartHour)
	}
	if h.EndHour < MinBusinessHour || h.EndHour > MaxBusinessHour {
		return fmt.Errorf("%w: end hour %d out of range", ErrInvalidBusinessHours, h.EndHour)
	}
	if h.StartHour >= h.EndHour {
		return fmt.Errorf("%w: start %d must be before end %d", ErrInvalidBusinessHours, h.StartHour, h.EndHour)
	}
	return nil
}

// Settings is the salon's business configuration. Holidays hold dates
// (YYYY-MM-DD form on the wire) on which no slots are generated at all.
type Settings struct {
	BusinessHours       BusinessHours
	SlotIntervalMinutes int
	Holidays            []time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultSettings returns the configuration used before any update is saved
func DefaultSettings() *Settings {
	return &Settings{
		BusinessHours: BusinessHours{
			StartHour: DefaultBusinessHoursStart,
			EndHour:   DefaultBusinessHoursEnd,
		},
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
		Holidays:            []time.Time{},
	}
}

// Validate enforces all configuration invariants before persisting
func (s *Settings) Validate() error {
	if err := s.BusinessHours.Validate(); err != nil {
		return err
	}
	if !IsAllowedSlotInterval(s.SlotIntervalMinutes) {
		return fmt.Errorf("%w: %d minutes", ErrInvalidSlotInterval, s.SlotIntervalMinutes)
	}
	return nil
}

// IsHoliday reports whether the given date is in the holiday set
func (s *Settings) IsHoliday(date time.Time) bool {
	y, m, d := date.Date()
	for _, h := range s.Holidays {
		hy, hm, hd := h.Date()
		if y == hy && m == hm && d == hd {
			return true
		}
	}
	return false
}
