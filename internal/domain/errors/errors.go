// Package errors defines the application-level error vocabulary shared by the
// usecase and infrastructure layers.
package errors

import (
	"net/http"
	"strings"

	"addrbook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrValidationFailed is returned when address attributes fail the rule set.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"address validation failed",
		"",
	)

	// ErrOwnerNotPersisted is returned for operations that need a persisted
	// owner, such as flushing pending addresses.
	ErrOwnerNotPersisted = NewBaseError(
		http.StatusConflict,
		"OWNER_NOT_PERSISTED",
		"owner has not been persisted yet",
		"",
	)

	// ErrTransactionFailed wraps database transaction failures.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)
)

// FailedValidationError aggregates every field-rule failure of a single
// write. Nothing is persisted when it is returned.
type FailedValidationError struct {
	Messages []string
}

// NewFailedValidationError creates a validation error from field messages.
func NewFailedValidationError(messages ...string) *FailedValidationError {
	return &FailedValidationError{Messages: messages}
}

// Error joins the field messages with spaces behind the package prefix.
func (e *FailedValidationError) Error() string {
	return "[Addresses] " + strings.Join(e.Messages, " ")
}

// HTTPCode returns the HTTP status code
func (e *FailedValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *FailedValidationError) ErrorCode() string {
	return "ADDRESS_VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FailedValidationError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *FailedValidationError) Details() string {
	return strings.Join(e.Messages, "\n")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
