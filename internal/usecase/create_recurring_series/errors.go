package create_recurring_series

import "errors"

var (
	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoAppointmentsCreated is returned when every occurrence of the series failed
	ErrNoAppointmentsCreated = errors.New("no appointments could be created")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
