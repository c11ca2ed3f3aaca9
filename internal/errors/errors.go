// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEntitlementRequired indicates a paid feature was requested without
	// the corresponding entitlement.
	ErrEntitlementRequired = errors.New("entitlement required")

	// ErrDatasetUnavailable indicates the cutoff dataset has not been loaded.
	ErrDatasetUnavailable = errors.New("cutoff dataset unavailable")

	// ErrSignatureMismatch indicates a payment checkout signature failed verification.
	ErrSignatureMismatch = errors.New("checkout signature mismatch")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ProviderError represents a payment provider failure with context.
type ProviderError struct {
	Operation string
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider error (op=%s): %v", e.Operation, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new payment provider error.
func NewProviderError(operation string, err error) *ProviderError {
	return &ProviderError{
		Operation: operation,
		Err:       err,
	}
}
