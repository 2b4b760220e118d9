package model

import "errors"

var (
	// ErrAuthorNotFound carries the exact wire message for 404 responses.
	ErrAuthorNotFound = errors.New("Author not found")

	// Database Errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	default:
		return 500
	}
}
