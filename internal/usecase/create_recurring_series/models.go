package create_recurring_series

import (
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/pkg/types"
)

// Request describes a repeating-booking series. The anchor date is the first
// visit of the series; Count further occurrences follow it at the chosen
// interval, all sharing one recurrence group.
type Request struct {
	ClientName string
	ClientID   *uuid.UUID
	ServiceID  uuid.UUID
	AnchorDate time.Time
	StartTime  types.TimeString
	Interval   domain.RecurrenceInterval
	Count      int // follow-up occurrences after the anchor
}

// Response reports how much of the series could be booked
type Response struct {
	GroupID        uuid.UUID
	RequestedCount int
	CreatedCount   int
	Appointments   []*domain.Appointment
}
