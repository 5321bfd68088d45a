package validator

import "errors"

// Common errors returned by the validation engine.
var (
	// ErrNilSchema is returned when a validator is built without a schema.
	ErrNilSchema = errors.New("validator: schema is required")

	// ErrNilObject is returned when validation is invoked without an object.
	ErrNilObject = errors.New("validator: object is required")

	// ErrUnsupportedCheckResult is returned when a caller-supplied check
	// produces a value the engine does not know how to interpret.
	ErrUnsupportedCheckResult = errors.New("validator: unsupported check result type")

	// ErrCheckPanic is returned when a check panics during a run.
	ErrCheckPanic = errors.New("validator: check panicked")

	// ErrChainTimeout is returned when a pending check does not settle within
	// the chain's configured timeout.
	ErrChainTimeout = errors.New("validator: chain timed out waiting for pending check")
)
