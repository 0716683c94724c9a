package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrVertexNotFound   = errors.New("vertex not found")
	ErrStoreClosed      = errors.New("store is closed")
	ErrInvalidWeight    = errors.New("invalid edge weight")
)

// StoreError provides structured error information for store operations.
type StoreError struct {
	Op     string // Operation that failed (e.g., "Neighbors", "Degrees")
	Entity string // Entity type (e.g., "vertex", "stream")
	ID     uint64 // Entity ID (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *StoreError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// vertexError wraps a sentinel error with the failing operation and vertex ID.
func vertexError(op string, id uint64, cause error) error {
	return &StoreError{Op: op, Entity: "vertex", ID: id, Cause: cause}
}

// streamError wraps a sentinel error with the failing stream operation.
func streamError(op string, cause error) error {
	return &StoreError{Op: op, Entity: "stream", Cause: cause}
}
