package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies application errors by failure kind.
type ErrorType string

const (
	ErrTypeSourceNotFound   ErrorType = "SOURCE_NOT_FOUND"
	ErrTypeSourceUnreadable ErrorType = "SOURCE_UNREADABLE"
	ErrTypeMissingColumn    ErrorType = "MISSING_REQUIRED_COLUMN"
	ErrTypeParsing          ErrorType = "PARSING"
	ErrTypeExport           ErrorType = "EXPORT"
	ErrTypeConfig           ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType of err when it is (or wraps) an AppError,
// and an empty string otherwise.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// Helper functions for common error types

// NewSourceNotFoundError reports a missing input workbook.
func NewSourceNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeSourceNotFound, fmt.Sprintf("source file %s not found", path), cause).
		WithContext("path", path)
}

// NewSourceUnreadableError reports an input workbook that exists but
// could not be read.
func NewSourceUnreadableError(path string, cause error) *AppError {
	return NewAppError(ErrTypeSourceUnreadable, fmt.Sprintf("source file %s could not be read", path), cause).
		WithContext("path", path)
}

// NewMissingColumnError reports required columns with no accepted alias in
// the table schema. The detected column set is carried for diagnostics.
func NewMissingColumnError(missing []string, detected []string) *AppError {
	return NewAppError(ErrTypeMissingColumn,
		fmt.Sprintf("required column(s) %v not found, detected columns: %v", missing, detected), nil).
		WithContext("missing", missing).
		WithContext("detected", detected)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewExportError creates an export-related error
func NewExportError(message string, cause error) *AppError {
	return NewAppError(ErrTypeExport, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
