package settings

import "errors"

var (
	// ErrBuildQuery is returned when the SQL query could not be built
	ErrBuildQuery = errors.New("storage/settings: build query")

	// ErrExecQuery is returned when the SQL query could not be executed
	ErrExecQuery = errors.New("storage/settings: execute query")

	// ErrScanRow is returned when a result row could not be scanned
	ErrScanRow = errors.New("storage/settings: scan row")
)
