package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	// Handlers map it to a 404.
	ErrNotFound = errors.New("record not found")
)
