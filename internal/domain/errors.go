// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates a quote submission failed input validation.
	ErrValidation = errors.New("validation failed")

	// ErrStorage indicates the data store could not read or write a record.
	ErrStorage = errors.New("storage failure")

	// ErrNotification indicates the email transport failed to send a notification.
	ErrNotification = errors.New("notification failure")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// StorageError reports a failed data store operation.
type StorageError struct {
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s failed: %v", e.Operation, e.Cause)
	}

	return fmt.Sprintf("storage %s failed", e.Operation)
}

// Unwrap returns both the sentinel and the cause so errors.Is matches either.
func (e *StorageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorage}
	}

	return []error{ErrStorage, e.Cause}
}

// NewStorageError wraps a store failure for the named operation.
func NewStorageError(operation string, cause error) error {
	return &StorageError{Operation: operation, Cause: cause}
}

// NotificationError reports a failed outbound notification.
type NotificationError struct {
	Transport string
	Cause     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("notification via %s failed: %v", e.Transport, e.Cause)
	}

	return fmt.Sprintf("notification via %s failed", e.Transport)
}

// Unwrap returns both the sentinel and the cause so errors.Is matches either.
func (e *NotificationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrNotification}
	}

	return []error{ErrNotification, e.Cause}
}

// NewNotificationError wraps a transport failure.
func NewNotificationError(transport string, cause error) error {
	return &NotificationError{Transport: transport, Cause: cause}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorage checks if an error is a storage error.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsNotification checks if an error is a notification error.
func IsNotification(err error) bool {
	return errors.Is(err, ErrNotification)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
