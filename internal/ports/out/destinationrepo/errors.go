package destinationrepo

import "errors"

var (
	// ErrNotFound indicates the requested destination does not exist.
	ErrNotFound = errors.New("destination not found")

	// ErrAlreadyExists indicates a destination is already stored under the provided name.
	ErrAlreadyExists = errors.New("destination already exists")
)
