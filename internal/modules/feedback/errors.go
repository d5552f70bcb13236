package feedback

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("forbidden")
	// ErrConflict surfaces a duplicate submission that raced past the
	// upfront existence check into the storage uniqueness constraint.
	ErrConflict = errors.New("feedback already exists")
)

// ValidationError accumulates every violated eligibility rule.
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
	return "feedback rejected: " + strings.Join(parts, "; ")
}
