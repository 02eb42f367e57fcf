package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/pkg/types"
)

// AttendanceStatus records whether the client showed up.
// Meaningful only once the appointment's date is in the past.
type AttendanceStatus string

const (
	AttendanceUnset     AttendanceStatus = ""
	AttendanceConfirmed AttendanceStatus = "confirmed"
	AttendanceMissed    AttendanceStatus = "missed"
)

// IsValid reports whether the status is one of the settable values
func (s AttendanceStatus) IsValid() bool {
	return s == AttendanceConfirmed || s == AttendanceMissed
}

// Appointment represents a booked time window for one client.
// ServiceName and EndTime are snapshots taken at creation time: later edits
// to the referenced service never change an existing appointment.
type Appointment struct {
	ID         uuid.UUID
	ClientName string
	ClientID   *uuid.UUID
	ServiceID  uuid.UUID

	// Denormalized data for history
	ServiceName string

	Date      time.Time        // calendar date, time part is midnight
	StartTime types.TimeString // HH:MM
	EndTime   types.TimeString // HH:MM, StartTime + service duration at creation

	RecurrenceGroupID *uuid.UUID
	AttendanceStatus  AttendanceStatus
	CalendarEventID   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRecurring reports whether the appointment belongs to a recurrence group
func (a *Appointment) IsRecurring() bool {
	return a.RecurrenceGroupID != nil
}

// HasAttendance reports whether attendance has already been recorded.
// Recorded statuses are terminal: there is no transition back to unset.
func (a *Appointment) HasAttendance() bool {
	return a.AttendanceStatus != AttendanceUnset
}

// SameDate reports whether the appointment falls on the given calendar date
func (a *Appointment) SameDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasConflict reports whether the half-open interval [proposedStart, proposedEnd)
// overlaps any appointment on the given date. excludeID skips one appointment,
// used when re-checking an update in place. This is the authoritative guard:
// slot availability shown to the caller is advisory, this check runs again at
// commit time.
func HasConflict(
	date time.Time,
	proposedStart, proposedEnd types.TimeString,
	existing []*Appointment,
	excludeID *uuid.UUID,
) bool {
	for _, appt := range existing {
		if !appt.SameDate(date) {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if types.Overlaps(proposedStart, proposedEnd, appt.StartTime, appt.EndTime) {
			return true
		}
	}
	return false
}
