package usecase

import "errors"

var (
	// ErrInvalidInput rejects a request before any I/O, e.g. a missing sheetId.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotFound = errors.New("resource not found")

	// ErrNotConfigured means a required credential such as GOOGLE_API_KEY is absent.
	ErrNotConfigured = errors.New("not configured")

	// ErrUpstream wraps a failed spreadsheet fetch.
	ErrUpstream = errors.New("upstream request failed")

	// ErrDependencyUnavailable is returned while the sheets circuit is open.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
