package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound is returned when a visit log id is absent from the
	// document store, or a referenced visit is absent from PostgreSQL.
	ErrNotFound = errors.New("not found")

	// ErrMissingParent is returned by save when the record has no visit
	// handle or the handle carries a nil identifier.
	ErrMissingParent = errors.New("missing parent visit")

	// ErrDataCorruption is returned when a stored visitId cannot be parsed
	// as a UUID. The record is unreadable and needs manual intervention.
	ErrDataCorruption = errors.New("data corruption")

	// ErrStoreUnavailable wraps any document store driver failure so that
	// store-specific vocabulary does not leak to callers.
	ErrStoreUnavailable = errors.New("document store unavailable")
)
