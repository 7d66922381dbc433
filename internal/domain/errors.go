package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrRecordNotFound indicates the requested media record does not exist
	ErrRecordNotFound = errors.New("media record not found")

	// ErrSourceUnavailable indicates the catalog source could not be reached
	ErrSourceUnavailable = errors.New("catalog source is unreachable")

	// ErrBadDocument indicates the catalog document could not be parsed
	ErrBadDocument = errors.New("catalog document is malformed")
)
