package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("directory service unavailable")

	// Reply-level errors.
	ErrRejected = errors.New("request rejected by directory service")
	ErrNotFound = errors.New("not found")

	// Client-side form errors.
	ErrValidation = errors.New("validation error")
)
