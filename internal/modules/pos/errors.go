package pos

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound      = errors.New("pos not found")
	ErrDuplicateName = errors.New("pos name already exists")
	ErrIDMismatch    = errors.New("pos id in path and body do not match")
	ErrIDOnCreate    = errors.New("pos id must not be set on create")
	ErrEmptyBatch    = errors.New("at least one pos is required")
)

// ValidationError reports failed field rules, keyed by JSON field name.
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
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
