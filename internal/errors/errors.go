// Package errors defines the domain error type shared by the service
// layer and the HTTP boundary.
package errors

import "fmt"

// DomainError is a business failure with a stable machine-readable code.
// Handlers map codes to HTTP statuses; services wrap or return these
// directly so callers can always tell "nothing happened" apart from an
// internal fault.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}
