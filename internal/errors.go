package internal

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureKind identifies a handler error result.
type FailureKind uint8

// Failure kinds.
const (
	FailureBadRequest FailureKind = iota
	FailureForbidden
	FailureUnauthorized
	FailureInternal
	failureKindCount
)

// failureStatus maps every FailureKind to its HTTP status code.
var failureStatus = [failureKindCount]int{
	FailureBadRequest:   http.StatusBadRequest,
	FailureForbidden:    http.StatusForbidden,
	FailureUnauthorized: http.StatusUnauthorized,
	FailureInternal:     http.StatusInternalServerError,
}

func init() {
	for k := range failureKindCount {
		if failureStatus[k] == 0 {
			panic(fmt.Sprintf("internal: failure kind %d has no status code", k))
		}
	}
}

// StatusCode returns the HTTP status for the kind.
// Unknown kinds map to 500.
func (k FailureKind) StatusCode() int {
	if k >= failureKindCount {
		return http.StatusInternalServerError
	}
	return failureStatus[k]
}

// String returns the status text of the kind.
func (k FailureKind) String() string {
	return http.StatusText(k.StatusCode())
}

// Failure is the error result of a handler.
// Err is the underlying cause; it is logged, never written to the response.
type Failure struct {
	Err  error
	Kind FailureKind
}

func (e *Failure) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code of the failure.
func (e *Failure) StatusCode() int {
	return e.Kind.StatusCode()
}

// NewFailure creates a Failure of the given kind wrapping cause.
func NewFailure(kind FailureKind, cause error) *Failure {
	return &Failure{Kind: kind, Err: cause}
}

// Convenience constructors for each failure kind.

func ErrBadRequest(cause error) *Failure {
	return NewFailure(FailureBadRequest, cause)
}

func ErrForbidden(cause error) *Failure {
	return NewFailure(FailureForbidden, cause)
}

func ErrUnauthorized(cause error) *Failure {
	return NewFailure(FailureUnauthorized, cause)
}

func ErrInternal(cause error) *Failure {
	return NewFailure(FailureInternal, cause)
}

// IsFailure reports whether err is or wraps a Failure.
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

// AsFailure extracts the Failure from an error chain.
// Returns nil if err is nil or carries no Failure.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// ToFailure converts any handler error into a Failure.
// Errors that carry no Failure become InternalError.
func ToFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	if f := AsFailure(err); f != nil {
		return f
	}
	return ErrInternal(err)
}
