// Package apperrors defines the error taxonomy shared by the store, the
// gateway, and the exporter. Callers classify failures with errors.Is; the
// underlying engine message is always preserved through wrapping.
package apperrors

import "errors"

var (
	// ErrNotReady is returned when the store is used before schema
	// provisioning has completed or after it has been closed.
	ErrNotReady = errors.New("store not ready")

	// ErrCancelled marks a user-dismissed destination prompt. It is a
	// normal short-circuit, not a failure.
	ErrCancelled = errors.New("export cancelled")

	// ErrConstraint wraps engine-level constraint violations (foreign key,
	// NOT NULL, CHECK).
	ErrConstraint = errors.New("constraint violation")

	// ErrIO wraps filesystem failures during export.
	ErrIO = errors.New("i/o failure")
)
