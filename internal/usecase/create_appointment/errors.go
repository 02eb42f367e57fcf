package create_appointment

import "errors"

var (
	// ErrServiceNotFound is returned when the booked service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrTimeConflict is returned when the requested time overlaps an existing appointment
	ErrTimeConflict = errors.New("time slot is already taken")

	// ErrInvalidTimeSlot is returned when the appointment would run past midnight
	ErrInvalidTimeSlot = errors.New("appointment does not fit within the day")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
