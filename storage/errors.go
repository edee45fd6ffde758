package storage

import "errors"

// Common storage-level errors
var (
	// ErrDataNotFound is returned when an update or delete targets an id
	// that is not present in the store.
	ErrDataNotFound = errors.New("data not found")

	// ErrInvalidData is returned when a record cannot be serialized for a
	// write. It indicates a schema bug, not a user-recoverable condition.
	ErrInvalidData = errors.New("invalid data")
)
