package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		interval int
		wantErr  error
	}{
		{name: "defaults valid", start: 8, end: 18, interval: 30},
		{name: "full day", start: 0, end: 23, interval: 15},
		{name: "start equals end", start: 10, end: 10, interval: 30, wantErr: ErrInvalidBusinessHours},
		{name: "start after end", start: 18, end: 8, interval: 30, wantErr: ErrInvalidBusinessHours},
		{name: "hour out of range", start: 8, end: 24, interval: 30, wantErr: ErrInvalidBusinessHours},
		{name: "negative hour", start: -1, end: 18, interval: 30, wantErr: ErrInvalidBusinessHours},
		{name: "interval not in enumeration", start: 8, end: 18, interval: 20, wantErr: ErrInvalidSlotInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{
				BusinessHours:       BusinessHours{StartHour: tt.start, EndHour: tt.end},
				SlotIntervalMinutes: tt.interval,
			}
			err := s.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, 8, s.BusinessHours.StartHour)
	assert.Equal(t, 18, s.BusinessHours.EndHour)
	assert.Equal(t, 30, s.SlotIntervalMinutes)
	assert.Empty(t, s.Holidays)
}

func TestIsHoliday(t *testing.T) {
	s := DefaultSettings()
	s.Holidays = []time.Time{date(2025, time.December, 25)}

	assert.True(t, s.IsHoliday(date(2025, time.December, 25)))
	// time-of-day must not matter
	assert.True(t, s.IsHoliday(time.Date(2025, 12, 25, 15, 30, 0, 0, time.UTC)))
	assert.False(t, s.IsHoliday(date(2025, time.December, 24)))
}
