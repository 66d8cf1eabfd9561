// Package errs defines the error types the API returns to clients.
//
// Every error that escapes a handler is eventually rendered as an
// HTTPError, so clients always receive the same JSON envelope:
// a machine-readable code, a human-readable message, the HTTP status,
// and, for validation failures, a list of per-field errors.
package errs
