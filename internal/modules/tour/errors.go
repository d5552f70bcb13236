package tour

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound  = errors.New("tour not found")
	ErrForbidden = errors.New("forbidden")
	// ErrProfileRequired gates tour creation: an agency must publish a
	// profile before publishing tours.
	ErrProfileRequired = errors.New("agency profile required")
	// ErrHasBookings blocks deletion of a tour that bookings reference.
	// This is a domain rule, not an authorization failure.
	ErrHasBookings = errors.New("tour has bookings")
)

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
