package calendar

import "errors"

var (
	// ErrEventNotFound is returned when the calendar bridge does not know the event
	ErrEventNotFound = errors.New("calendar event not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("calendar client: internal error")

	// ErrInvalidResponse is returned when the calendar bridge answers unexpectedly
	ErrInvalidResponse = errors.New("calendar client: invalid response")
)
