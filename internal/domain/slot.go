package domain

import "github.com/salao-digital/salon-scheduler/pkg/types"

// TimeSlot represents one candidate start time on the booking grid.
// Derived on every query, never persisted.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// CountAvailable returns how many slots in the list are bookable
func CountAvailable(slots []TimeSlot) int {
	count := 0
	for _, s := range slots {
		if s.Available {
			count++
		}
	}
	return count
}
