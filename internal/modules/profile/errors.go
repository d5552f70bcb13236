package profile

import "errors"

var (
	ErrNotFound = errors.New("profile not found")
	// ErrAlreadyExists enforces first-create-wins: one profile per agency.
	ErrAlreadyExists = errors.New("profile already exists")
	ErrForbidden     = errors.New("forbidden")
)
