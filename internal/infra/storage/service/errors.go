package service

import "errors"

var (
	// ErrServiceNotFound is returned when a service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrBuildQuery is returned when the SQL query could not be built
	ErrBuildQuery = errors.New("storage/service: build query")

	// ErrExecQuery is returned when the SQL query could not be executed
	ErrExecQuery = errors.New("storage/service: execute query")

	// ErrScanRow is returned when a result row could not be scanned
	ErrScanRow = errors.New("storage/service: scan row")
)
