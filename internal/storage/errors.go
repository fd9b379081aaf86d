package storage

import "errors"

// Sentinel errors for the four reportable failure kinds. Repository methods
// wrap these with the offending field or id so the tool layer can classify
// with errors.Is and still report a useful detail string.
var (
	// ErrValidation marks a missing, malformed, or wrongly-typed argument.
	ErrValidation = errors.New("invalid argument")

	// ErrNotFound marks a referenced id that does not exist in the
	// relevant table.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a composite write that could not complete
	// atomically; the whole operation is rolled back.
	ErrConflict = errors.New("integrity conflict")

	// ErrUnavailable marks an unreachable store. Retryable by the caller,
	// never retried here.
	ErrUnavailable = errors.New("storage unavailable")
)
