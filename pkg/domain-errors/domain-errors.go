package domainerrors

import "errors"

// Code represents a domain error category independent of transport layer.
// These codes describe what went wrong in business logic terms, not HTTP terms.
type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	CodeInternal     Code = "internal_error"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeTimeout      Code = "timeout"
	CodeUnavailable  Code = "unavailable"

	// Fiscal code decoding errors. Each maps to one failure mode of the
	// positional grammar so batch callers can tell garbage input apart from
	// valid input that merely references incomplete reference data.
	CodeShape            Code = "shape_error"        // wrong length, bad charset, non-omocodia letter in a digit position
	CodeChecksumMismatch Code = "checksum_mismatch"  // recomputed check character disagrees with the supplied one
	CodeInvalidMonth     Code = "invalid_month"      // month position is not one of the twelve month letters
	CodeInvalidDay       Code = "invalid_day"        // day value outside 1-31 / 41-71 after gender offset removal
	CodeUnknownPlace     Code = "unknown_place_code" // structurally valid code, place absent from the reference table
)

// Error wraps domain or infrastructure failures with a stable code.
// It is transport-agnostic and can be used across service, store, and other layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		// Preserve the original domain code, update message
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the domain code carried by err, or CodeInternal when err is
// not a domain error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsDecodeFailure reports whether the code names a fiscal code decoding
// failure, as opposed to an infrastructure or request-level problem.
func IsDecodeFailure(code Code) bool {
	switch code {
	case CodeShape, CodeChecksumMismatch, CodeInvalidMonth, CodeInvalidDay, CodeUnknownPlace:
		return true
	default:
		return false
	}
}
