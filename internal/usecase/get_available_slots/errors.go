package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("usecase: internal error")
)
