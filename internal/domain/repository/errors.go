package repository

import "errors"

var (
	// ErrEntityNotFound is returned by updates addressing an unknown id
	ErrEntityNotFound = errors.New("entity not found")
	// ErrEntityConflict is returned by inserts colliding with a stored entity
	ErrEntityConflict = errors.New("entity already exists")
)
