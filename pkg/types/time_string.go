package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfDay is returned when time arithmetic would cross midnight
	ErrTimeOutOfDay = errors.New("time is outside of the day boundaries")
)

// TimeString represents a time of day in "HH:MM" 24-hour format.
// It is the unit of all slot arithmetic: appointments are same-day,
// so any operation that would cross midnight is rejected.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", ErrTimeOutOfDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format and the hour/minute ranges
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return ErrInvalidTimeString
	}
	var hour, minute int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return ErrInvalidTimeString
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ErrInvalidTimeString
	}
	return nil
}

// Hour returns the hour component (0-23)
func (t TimeString) Hour() int {
	return t.MinutesSinceMidnight() / 60
}

// Minute returns the minute component (0-59)
func (t TimeString) Minute() int {
	return t.MinutesSinceMidnight() % 60
}

// MinutesSinceMidnight converts the time to minutes since 00:00.
// The value must be validated beforehand; malformed values yield 0.
func (t TimeString) MinutesSinceMidnight() int {
	var hour, minute int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return 0
	}
	return hour*60 + minute
}

// AddMinutes returns the time advanced by the given number of minutes.
// Returns ErrTimeOutOfDay if the result would cross midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.MinutesSinceMidnight() + minutes)
}

// IsBefore reports whether t is strictly before other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesSinceMidnight() < other.MinutesSinceMidnight()
}

// IsAfter reports whether t is strictly after other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesSinceMidnight() > other.MinutesSinceMidnight()
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap, so
// back-to-back appointments are compatible.
func Overlaps(aStart, aEnd, bStart, bEnd TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// Value implements driver.Valuer for database storage
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	// Postgres TIME columns come back as "HH:MM:SS"
	if len(*t) == 8 && (*t)[5] == ':' {
		*t = (*t)[:5]
	}
	return nil
}
