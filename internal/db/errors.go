package db

import "errors"

var (
	// ErrNotFound is returned when a requested analysis does not exist.
	ErrNotFound = errors.New("analysis not found")
	// ErrNoDatabaseURL is returned when persistence is requested without a database URL.
	ErrNoDatabaseURL = errors.New("database URL is required")
)
