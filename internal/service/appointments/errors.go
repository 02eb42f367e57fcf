package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidAttendance is returned for an unknown attendance status
	ErrInvalidAttendance = errors.New("invalid attendance status")

	// ErrAttendanceAlreadySet is returned when attendance was already recorded
	ErrAttendanceAlreadySet = errors.New("attendance already recorded")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
