package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more violated input invariants.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s does not exist", e.Entity, e.ID)
}

// ConflictError reports a uniqueness violation on create.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a customer with the %s '%s' already exists", e.Field, e.Value)
}

// InvalidFilterError reports an unknown filter criterion or a malformed bound.
type InvalidFilterError struct {
	Key    string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unknown filter criterion %q", e.Key)
	}
	return fmt.Sprintf("invalid filter criterion %q: %s", e.Key, e.Reason)
}
