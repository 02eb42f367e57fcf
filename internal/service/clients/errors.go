package clients

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidTier is returned for an unknown client tier
	ErrInvalidTier = errors.New("invalid client tier")

	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
