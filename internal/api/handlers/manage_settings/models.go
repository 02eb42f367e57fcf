package manage_settings

import (
	"time"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// UpdateSettingsRequest replaces business hours and slot interval
type UpdateSettingsRequest struct {
	BusinessHoursStart  int `json:"businessHoursStart"`
	BusinessHoursEnd    int `json:"businessHoursEnd"`
	SlotIntervalMinutes int `json:"slotIntervalMinutes"`
}

// HolidayRequest carries one holiday date
type HolidayRequest struct {
	Date string `json:"date"` // "2024-12-25"
}

// SettingsResponse is the wire form of the configuration
type SettingsResponse struct {
	BusinessHoursStart  int      `json:"businessHoursStart"`
	BusinessHoursEnd    int      `json:"businessHoursEnd"`
	SlotIntervalMinutes int      `json:"slotIntervalMinutes"`
	Holidays            []string `json:"holidays"`
	UpdatedAt           string   `json:"updatedAt"`
}

// FromDomainSettings converts the configuration to its wire form
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	holidays := make([]string, 0, len(s.Holidays))
	for _, h := range s.Holidays {
		holidays = append(holidays, h.Format(domain.DateFormat))
	}
	return &SettingsResponse{
		BusinessHoursStart:  s.BusinessHours.StartHour,
		BusinessHoursEnd:    s.BusinessHours.EndHour,
		SlotIntervalMinutes: s.SlotIntervalMinutes,
		Holidays:            holidays,
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}
