package reminders

import "errors"

var (
	// ErrReminderNotFound is returned when the notification service does not know the reminder
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("reminders client: internal error")

	// ErrInvalidResponse is returned when the notification service answers unexpectedly
	ErrInvalidResponse = errors.New("reminders client: invalid response")
)
