package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or range conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrZeroLengthWindow marks a time window whose start equals its end.
var ErrZeroLengthWindow = errors.New("zero-length window")

// ValidationError carries a human-readable reason for a rejected tariff write.
// It matches ErrConflict with errors.Is, and Kind when set.
type ValidationError struct {
	Reason string
	Kind   error
}

func (e *ValidationError) Error() string { return e.Reason }

// Unwrap lets callers classify the error as a conflict.
func (e *ValidationError) Unwrap() []error {
	if e.Kind != nil {
		return []error{ErrConflict, e.Kind}
	}
	return []error{ErrConflict}
}

// Validation returns a ValidationError with the given reason.
func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

// ValidationOf returns a ValidationError that also matches kind.
func ValidationOf(kind error, reason string) error {
	return &ValidationError{Reason: reason, Kind: kind}
}

// Reason extracts the validation reason from err, if any.
func Reason(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
