package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input,
	// such as a create or edit with a required field left empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage indicates a persistence read or write failure.
	ErrStorage = errors.New("storage failure")

	// ErrNotConfirmed indicates a destructive bulk operation was
	// requested without the caller confirming it first.
	ErrNotConfirmed = errors.New("bulk operation not confirmed")

	// ErrNoActiveSite indicates no site is currently active.
	// Catalog and document operations require an active site.
	ErrNoActiveSite = errors.New("no active site")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
