// Package errors provides structured error handling for dex tooling.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Lookup errors
	CodeNotFound Code = "NOT_FOUND"

	// Bundle and import errors
	CodeDataInvalid Code = "DATA_INVALID"

	// Command configuration errors
	CodeConfigInvalid Code = "CONFIG_INVALID"

	// Dexcheck script errors
	CodeCheckFailed Code = "CHECK_FAILED"
)
