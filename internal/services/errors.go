package services

import "errors"

// ErrNotFound marks lookups of records that do not exist for the caller.
// Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a request before anything is written. The wrapped
// message is safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

// StateError signals an impossible internal state (cache corruption, an
// inconsistent status/pages pair reaching persistence). Writes fail rather
// than persist the inconsistency.
type StateError struct {
	Message string
}

func (err *StateError) Error() string {
	return err.Message
}
