package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEntityNotFound       = errors.New("entity not found")
	ErrRelationshipNotFound = errors.New("relationship not found")
	ErrDuplicateID          = errors.New("duplicate id")
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidKind          = errors.New("invalid kind")
	ErrDanglingEndpoint     = errors.New("relationship endpoint does not exist")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "AddEntity", "Neighbors")
	Object  string // Object type ("entity", "relationship")
	ID      string // Object ID (if applicable)
	Index   int    // Position within a bulk operation (-1 when not bulk)
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.Index >= 0 && e.ID != "":
		return fmt.Sprintf("%s %s %s (index %d): %v", e.Op, e.Object, e.ID, e.Index, e.Cause)
	case e.ID != "":
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Object, e.ID, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Object, e.Context, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Object, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op, Index: -1}}
}

// Entity sets the object to "entity" with the given ID.
func (b *ErrorBuilder) Entity(id string) *ErrorBuilder {
	b.err.Object = "entity"
	b.err.ID = id
	return b
}

// Relationship sets the object to "relationship" with the given ID.
func (b *ErrorBuilder) Relationship(id string) *ErrorBuilder {
	b.err.Object = "relationship"
	b.err.ID = id
	return b
}

// Index sets the position within a bulk operation.
func (b *ErrorBuilder) Index(i int) *ErrorBuilder {
	b.err.Index = i
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// EntityNotFoundError creates an entity not found error.
func EntityNotFoundError(id string) error {
	return NewError("get").Entity(id).Cause(ErrEntityNotFound).Err()
}

// RelationshipNotFoundError creates a relationship not found error.
func RelationshipNotFoundError(id string) error {
	return NewError("get").Relationship(id).Cause(ErrRelationshipNotFound).Err()
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound) || errors.Is(err, ErrRelationshipNotFound)
}
