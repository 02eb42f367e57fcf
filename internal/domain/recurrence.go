package domain

import (
	"errors"
	"time"
)

// ErrInvalidRecurrence is returned for an unknown interval or count out of range
var ErrInvalidRecurrence = errors.New("invalid recurrence")

// RecurrenceInterval is the spacing between repeated appointments.
// "monthly" is a fixed 28-day approximation, not calendar-month arithmetic;
// the mapping is part of the stored data contract and must not change.
type RecurrenceInterval string

const (
	RecurrenceWeekly      RecurrenceInterval = "weekly"
	RecurrenceBiweekly    RecurrenceInterval = "biweekly"
	RecurrenceEvery3Weeks RecurrenceInterval = "3weeks"
	RecurrenceMonthly     RecurrenceInterval = "monthly"
)

// Days returns the interval length in days, or 0 for an unknown interval
func (i RecurrenceInterval) Days() int {
	switch i {
	case RecurrenceWeekly:
		return 7
	case RecurrenceBiweekly:
		return 14
	case RecurrenceEvery3Weeks:
		return 21
	case RecurrenceMonthly:
		return 28
	default:
		return 0
	}
}

// IsValid reports whether the interval is one of the supported values
func (i RecurrenceInterval) IsValid() bool {
	return i.Days() > 0
}

// ExpandDates returns the count dates following anchor, spaced by the
// interval: anchor + k*days for k = 1..count. Pure date arithmetic —
// holidays and conflicts are checked per date at creation time, not here.
func ExpandDates(anchor time.Time, interval RecurrenceInterval, count int) ([]time.Time, error) {
	if !interval.IsValid() {
		return nil, ErrInvalidRecurrence
	}
	if count < 1 || count > MaxRecurrenceCount {
		return nil, ErrInvalidRecurrence
	}

	days := interval.Days()
	dates := make([]time.Time, 0, count)
	for k := 1; k <= count; k++ {
		dates = append(dates, anchor.AddDate(0, 0, k*days))
	}
	return dates, nil
}
