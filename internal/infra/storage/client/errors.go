package client

import "errors"

var (
	// ErrClientNotFound is returned when a client does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrBuildQuery is returned when the SQL query could not be built
	ErrBuildQuery = errors.New("storage/client: build query")

	// ErrExecQuery is returned when the SQL query could not be executed
	ErrExecQuery = errors.New("storage/client: execute query")

	// ErrScanRow is returned when a result row could not be scanned
	ErrScanRow = errors.New("storage/client: scan row")
)
