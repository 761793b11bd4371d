package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy shared across services and adapters. The store adapter maps
// driver errors onto these; the HTTP adapter maps them onto status codes.

var (
	// ErrNotFound means a referenced record id exists in neither collection.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the store reported an authorization failure.
	ErrPermissionDenied = errors.New("permission denied")
)

// UpstreamError wraps a persistence-layer failure. The core never retries;
// retry policy belongs to the store client.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure during %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// FieldError is one per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field failure for a rejected write. Writes
// that fail validation are never partially applied.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
