package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when an appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrBuildQuery is returned when the SQL query could not be built
	ErrBuildQuery = errors.New("storage/appointment: build query")

	// ErrExecQuery is returned when the SQL query could not be executed
	ErrExecQuery = errors.New("storage/appointment: execute query")

	// ErrScanRow is returned when a result row could not be scanned
	ErrScanRow = errors.New("storage/appointment: scan row")
)
