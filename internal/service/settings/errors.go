package settings

import "errors"

var (
	// ErrInvalidSettings is returned when the proposed configuration is rejected
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrHolidayNotFound is returned when removing a date that is not a holiday
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
