package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint rejected the write.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidIdentifier is returned when a string cannot be parsed into a document identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrValidation wraps input that failed the coercion/validation boundary.
	ErrValidation = errors.New("validation failed")
	// ErrDanglingReference indicates a cart entry points at a class that no longer exists.
	ErrDanglingReference = errors.New("dangling class reference")
)
