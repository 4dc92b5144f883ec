package tree

import "fmt"

// ValidationError means a required field was missing or malformed. The caller
// can recover by supplying corrected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError means a referenced identifier does not resolve to any box or
// item in the forest. The forest is left unchanged.
type NotFoundError struct {
	Kind string // "box" or "item"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InvalidOperationError means a structurally disallowed mutation, such as
// moving a box into its own subtree. The forest is left unchanged.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}

func errValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func errNotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
