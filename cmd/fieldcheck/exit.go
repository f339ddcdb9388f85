package main

import "fmt"

const (
	// exitFindings is returned when the data has error findings, or
	// warnings under --strict.
	exitFindings = 1
	// exitConfig is returned for unreadable files, malformed rules and
	// unknown validation functions.
	exitConfig = 2
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
