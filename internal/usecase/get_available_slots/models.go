package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
)

// Request carries the date and service to compute slots for
type Request struct {
	Date      time.Time // day to compute slots for (time component ignored)
	ServiceID uuid.UUID // service whose duration determines slot occupancy
}

// Response lists every grid position of the day with its availability
type Response struct {
	Date      time.Time
	ServiceID uuid.UUID
	Slots     []domain.TimeSlot
}
