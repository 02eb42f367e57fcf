package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/salao-digital/salon-scheduler/pkg/types"
)

func appt(id uuid.UUID, day time.Time, start, end types.TimeString) *Appointment {
	return &Appointment{
		ID:        id,
		Date:      day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestHasConflict(t *testing.T) {
	day := date(2025, time.October, 15)
	otherDay := date(2025, time.October, 16)
	existing := []*Appointment{
		appt(uuid.New(), day, "10:00", "11:00"),
		appt(uuid.New(), otherDay, "09:00", "17:00"),
	}

	tests := []struct {
		name       string
		start, end types.TimeString
		want       bool
	}{
		{name: "overlapping second half", start: "10:30", end: "11:00", want: true},
		{name: "overlapping first half", start: "09:30", end: "10:30", want: true},
		{name: "exact same window", start: "10:00", end: "11:00", want: true},
		{name: "ends when existing starts", start: "09:00", end: "10:00", want: false},
		{name: "starts when existing ends", start: "11:00", end: "12:00", want: false},
		{name: "disjoint", start: "14:00", end: "15:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(day, tt.start, tt.end, existing, nil))
		})
	}
}

func TestHasConflictIgnoresOtherDates(t *testing.T) {
	day := date(2025, time.October, 15)
	existing := []*Appointment{
		appt(uuid.New(), date(2025, time.October, 16), "10:00", "11:00"),
	}
	assert.False(t, HasConflict(day, "10:00", "11:00", existing, nil))
}

func TestHasConflictExcludeID(t *testing.T) {
	day := date(2025, time.October, 15)
	id := uuid.New()
	existing := []*Appointment{appt(id, day, "10:00", "11:00")}

	// Re-checking the same appointment against itself must not self-conflict
	assert.False(t, HasConflict(day, "10:00", "11:00", existing, &id))
	other := uuid.New()
	assert.True(t, HasConflict(day, "10:00", "11:00", existing, &other))
}

func TestAttendanceStatus(t *testing.T) {
	assert.True(t, AttendanceConfirmed.IsValid())
	assert.True(t, AttendanceMissed.IsValid())
	assert.False(t, AttendanceUnset.IsValid())
	assert.False(t, AttendanceStatus("late").IsValid())

	a := &Appointment{}
	assert.False(t, a.HasAttendance())
	a.AttendanceStatus = AttendanceMissed
	assert.True(t, a.HasAttendance())
}
