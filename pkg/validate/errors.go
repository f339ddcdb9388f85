package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownValidation is wrapped by UnknownValidationError. It marks a
	// configuration fault: a rule names a function the library does not have.
	ErrUnknownValidation = errors.New("validation function does not exist")

	// ErrValidationFailed is wrapped by FindingsError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidSpec is returned when a rules document cannot be decoded into a
	// Spec, or a rule carries a function that cannot be called as a validation.
	ErrInvalidSpec = errors.New("invalid validation spec")
)

// UnknownValidationError reports the rule whose function could not be resolved.
type UnknownValidationError struct {
	Name string
}

func (e *UnknownValidationError) Error() string {
	return fmt.Sprintf("validation function %q does not exist", e.Name)
}

func (e *UnknownValidationError) Unwrap() error {
	return ErrUnknownValidation
}
