package booking

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("booking not found")
	ErrTourNotFound = errors.New("tour not found")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError accumulates every violated creation rule so the caller can
// correct all fields at once.
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
