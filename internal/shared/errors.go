package shared

import "errors"

var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrStoreUnavailable indicates the document store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
