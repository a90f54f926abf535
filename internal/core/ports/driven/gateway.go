package driven

import (
	"context"
	"net/url"
)

// ResponseKind tells the Gateway how the caller intends to read the body.
type ResponseKind int

const (
	// ResponseJSON expects a JSON document.
	ResponseJSON ResponseKind = iota

	// ResponseBinary expects an opaque byte stream (exports).
	ResponseBinary
)

// Request describes one call to the backend.
// At most one of JSON and Form is set; neither means no body.
type Request struct {
	Method string
	// Path is relative to the configured server URL, e.g. "/projects/".
	Path string
	// JSON is marshalled as an application/json body.
	JSON any
	// Form is sent as application/x-www-form-urlencoded.
	Form url.Values
	Kind ResponseKind
}

// Response is a successful (2xx) backend answer.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Gateway wraps every outbound call to the backend.
//
// A session token, when one exists, is attached as a bearer credential on
// every request except those under /auth/. Failures are typed:
// *domain.TransportError when no response arrived, *domain.RejectedError
// for non-2xx answers. Nothing is retried.
type Gateway interface {
	Do(ctx context.Context, req Request) (*Response, error)
}
