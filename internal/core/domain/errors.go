package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. The extraction pipeline
// itself never fails on degenerate input; these errors belong to the
// surrounding services and adapters.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrStoreUnavailable indicates no note store is configured.
	// Persistence commands are disabled without one.
	ErrStoreUnavailable = errors.New("note store unavailable")

	// ErrUnsupportedType indicates an unknown classifier or store type.
	ErrUnsupportedType = errors.New("unsupported type")
)
