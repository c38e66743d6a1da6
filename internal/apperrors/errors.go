// Package apperrors holds the error taxonomy shared by the request pipeline
// and the service layer. The HTTP error handler maps each type to a status code.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks a lookup that matched no record.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict marks a write that collides with an existing record.
	ErrConflict = errors.New("resource already exists")
)

// ValidationError reports a request fragment that does not satisfy its schema.
type ValidationError struct {
	Source  string
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request %s: %s", e.Source, strings.Join(e.Details, "; "))
}

// AuthenticationError reports a missing, malformed, invalid or expired credential.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unauthorized: %s: %v", e.Reason, e.Err)
	}
	return "unauthorized: " + e.Reason
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// AuthorizationError reports a principal that holds none of the required scopes.
type AuthorizationError struct {
	Required []string
}

func (e *AuthorizationError) Error() string {
	return "forbidden: requires one of scopes " + strings.Join(e.Required, ", ")
}

// ServiceError wraps a data-layer failure. The original cause stays reachable
// through Unwrap so callers can still match ErrNotFound or driver errors.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Wrap returns a ServiceError for op, or nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Op: op, Err: err}
}
