// Package middleware wires the HTTP middleware stack.
//
// It groups the global middleware (CORS, request logging, recovery,
// secure headers, the global error handler) plus request correlation
// helpers (request ID, request-scoped logger).
package middleware
