package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/pkg/types"
)

// Request carries everything needed to book a single appointment
type Request struct {
	ClientName string
	ClientID   *uuid.UUID // optional link to the client registry
	ServiceID  uuid.UUID
	Date       time.Time
	StartTime  types.TimeString

	// RecurrenceGroupID is set by the recurring-series use case so the
	// appointments of one series share a group
	RecurrenceGroupID *uuid.UUID
}

// Response is the created appointment plus the outcome of the calendar hook
type Response struct {
	Appointment *domain.Appointment

	// CalendarSynced reports whether the external calendar accepted the
	// event. The booking itself succeeds either way.
	CalendarSynced bool
}
