// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as bearer authentication, request-scoped database sessions,
// request logging, CORS and panic recovery
package middleware
