package service

import "errors"

var (
	// ErrValidation wraps a validators error for input rejected before any
	// storage or crypto work was done.
	ErrValidation = errors.New("validation error")

	// ErrStorage wraps a store error for a failed connection, query or
	// statement.
	ErrStorage = errors.New("storage error")

	// ErrEntryNotFound is returned when no row matches the requested id.
	ErrEntryNotFound = errors.New("entry not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
