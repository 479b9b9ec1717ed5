package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.
// These errors represent business rule violations and domain constraints.
//
// The classification is three-way:
//   - ErrValidation: the supplied data itself is unacceptable
//   - ErrOperation: the data is fine, but the current state forbids the operation
//   - ErrUnauthorizedOperation: the operation is legal but the caller may not perform it
//
// ErrUnauthorizedOperation wraps ErrOperation, so
// errors.Is(err, ErrOperation) also matches unauthorized failures.

var (
	// ErrValidation is returned when input validation fails.
	ErrValidation = errors.New("invalid input")

	// ErrOperation is returned when the requested operation conflicts with current state.
	ErrOperation = errors.New("operation not allowed")

	// ErrUnauthorizedOperation is returned when the caller lacks the right to
	// perform an otherwise legal operation. It is a specialization of ErrOperation.
	ErrUnauthorizedOperation = fmt.Errorf("unauthorized: %w", ErrOperation)

	// ErrNotFound is returned when a requested resource does not exist.
	// Raised by repositories, never by the aggregate itself.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when trying to create a resource that already exists.
	// Raised by repositories, never by the aggregate itself.
	ErrAlreadyExists = errors.New("resource already exists")
)

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrValidation)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrValidation,
		Message: message,
		Field:   field,
	}
}

// NewOperationError creates an operation error with context.
func NewOperationError(message string) *DomainError {
	return &DomainError{
		Base:    ErrOperation,
		Message: message,
	}
}

// NewUnauthorizedOperationError creates an unauthorized-operation error with context.
func NewUnauthorizedOperationError(message string) *DomainError {
	return &DomainError{
		Base:    ErrUnauthorizedOperation,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewAlreadyExistsError creates an already-exists error with context.
func NewAlreadyExistsError(message string) *DomainError {
	return &DomainError{
		Base:    ErrAlreadyExists,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsOperationError checks if an error is an operation error.
// This includes unauthorized-operation errors.
func IsOperationError(err error) bool {
	return errors.Is(err, ErrOperation)
}

// IsUnauthorizedOperationError checks if an error is an unauthorized-operation error.
func IsUnauthorizedOperationError(err error) bool {
	return errors.Is(err, ErrUnauthorizedOperation)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// FieldName extracts the offending field from a validation error, if any.
func FieldName(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}
