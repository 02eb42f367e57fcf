package get_available_slots

import (
	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/pkg/types"
)

// generateGrid builds every candidate start time of the day: from opening
// hour on the hour, stepping by the configured interval, while the candidate
// still starts before the closing hour.
func generateGrid(hours domain.BusinessHours, intervalMinutes int) []types.TimeString {
	var grid []types.TimeString

	minutes := hours.StartHour * 60
	for minutes/60 < hours.EndHour {
		t, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			break
		}
		grid = append(grid, t)
		minutes += intervalMinutes
	}
	return grid
}

// fitsBusinessDay reports whether a slot starting at start and lasting
// durationMinutes ends within the business day. An appointment may end
// exactly at closing time but never after it, and never past midnight.
func fitsBusinessDay(start types.TimeString, durationMinutes int, hours domain.BusinessHours) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		// would cross midnight
		return false
	}

	if end.Hour() > hours.EndHour {
		return false
	}
	if end.Hour() == hours.EndHour && end.Minute() > 0 {
		return false
	}
	return true
}

// buildSlots computes the day's slot list: each grid position that fits the
// business day appears, marked unavailable when the would-be appointment
// overlaps an existing one. Unavailable slots stay in the list so the
// schedule view can render the full grid.
func buildSlots(
	grid []types.TimeString,
	durationMinutes int,
	hours domain.BusinessHours,
	existing []*domain.Appointment,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(grid))

	for _, start := range grid {
		if !fitsBusinessDay(start, durationMinutes, hours) {
			continue
		}
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		available := true
		for _, appt := range existing {
			if types.Overlaps(start, end, appt.StartTime, appt.EndTime) {
				available = false
				break
			}
		}

		slots = append(slots, domain.TimeSlot{
			Time:      start,
			Available: available,
		})
	}
	return slots
}
