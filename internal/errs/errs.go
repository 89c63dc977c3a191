// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP boundary is rendered as an
// HTTPError so clients receive a consistent JSON shape with a
// machine-readable code, a message and optional field errors.
package errs
