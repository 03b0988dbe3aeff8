package repository

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist or is owned by
	// a different user. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on unique constraint violations.
	ErrConflict = errors.New("already exists")
)
