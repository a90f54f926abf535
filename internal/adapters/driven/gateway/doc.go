// Package gateway implements driven.Gateway over HTTP.
//
// Every backend call made by the client passes through Gateway.Do. It
// joins the request path onto the configured server URL, attaches the
// session as a bearer credential (except under /auth/), paces requests
// with a token bucket, and turns failures into *domain.TransportError or
// *domain.RejectedError. Nothing is retried.
package gateway
