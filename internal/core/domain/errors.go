package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedFormat indicates an unknown document format.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyExport indicates the backend returned no bytes for an export.
	ErrEmptyExport = errors.New("export returned no content")

	// Authentication Errors.

	// ErrAuthRequired indicates no session is stored.
	ErrAuthRequired = errors.New("authentication required")

	// ErrMissingToken indicates a login response carried no access token.
	ErrMissingToken = errors.New("login response contained no access token")

	// ErrUnauthorized indicates the backend rejected the session token.
	ErrUnauthorized = errors.New("unauthorized")
)

// TransportError is a request that never produced an HTTP response
// (connection refused, timeout, cancelled context).
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError is a request the backend answered with a non-2xx status.
type RejectedError struct {
	Method     string
	Path       string
	StatusCode int
	// Detail is the backend's error message when it sent one.
	Detail string
	Body   []byte
}

func (e *RejectedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Is maps well-known status codes onto the domain sentinels.
func (e *RejectedError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	default:
		return false
	}
}

// MalformedResponseError is a 2xx response whose body could not be used.
type MalformedResponseError struct {
	What string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return "malformed " + e.What + " response"
	}
	return fmt.Sprintf("malformed %s response: %v", e.What, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRejected reports whether err is, or wraps, a RejectedError.
func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}

// IsMalformed reports whether err is, or wraps, a MalformedResponseError.
func IsMalformed(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
