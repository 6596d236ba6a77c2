package errors

import (
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParsing             ErrorType = "PARSING"
	ErrTypeValidation          ErrorType = "VALIDATION"
	ErrTypeNotFound            ErrorType = "NOT_FOUND"
	ErrTypeConfig              ErrorType = "CONFIG"
	ErrTypeDateExtraction      ErrorType = "DATE_EXTRACTION"
	ErrTypeMissingGradedColumn ErrorType = "MISSING_GRADED_COLUMN"
	ErrTypeAmbiguousOrder      ErrorType = "AMBIGUOUS_ORDER"
	ErrTypeTimelineInversion   ErrorType = "TIMELINE_INVERSION"
	ErrTypeOutputLocked        ErrorType = "OUTPUT_LOCKED"
	ErrTypeSave                ErrorType = "SAVE"
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

// Is reports whether target is an AppError of the same type. This lets the
// package sentinels below match any error of their category.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Type == e.Type
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

// Sentinels for errors.Is checks.
var (
	ErrParsing             = &AppError{Type: ErrTypeParsing}
	ErrValidation          = &AppError{Type: ErrTypeValidation}
	ErrNotFound            = &AppError{Type: ErrTypeNotFound}
	ErrConfig              = &AppError{Type: ErrTypeConfig}
	ErrDateExtraction      = &AppError{Type: ErrTypeDateExtraction}
	ErrMissingGradedColumn = &AppError{Type: ErrTypeMissingGradedColumn}
	ErrAmbiguousOrder      = &AppError{Type: ErrTypeAmbiguousOrder}
	ErrTimelineInversion   = &AppError{Type: ErrTypeTimelineInversion}
	ErrOutputLocked        = &AppError{Type: ErrTypeOutputLocked}
	ErrSave                = &AppError{Type: ErrTypeSave}
)

// Helper functions for common error types

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewAppValidationError creates a validation error for AppError type
func NewAppValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewDateExtractionError is returned when neither the sheet name nor the
// file path carries a parseable snapshot date.
func NewDateExtractionError(path, sheet string) *AppError {
	return NewAppError(ErrTypeDateExtraction,
		fmt.Sprintf("could not extract a valid date from the file: %s", path), nil).
		WithContext("path", path).
		WithContext("sheet", sheet)
}

// NewMissingGradedColumnError is returned when a snapshot has no usable
// "Graded /N" column.
func NewMissingGradedColumnError(path, reason string) *AppError {
	return NewAppError(ErrTypeMissingGradedColumn,
		fmt.Sprintf("could not find the 'Graded /N' column in %s: %s", path, reason), nil).
		WithContext("path", path).
		WithContext("reason", reason)
}

// NewAmbiguousOrderError is returned when both snapshots share a date.
func NewAmbiguousOrderError(date string) *AppError {
	return NewAppError(ErrTypeAmbiguousOrder,
		fmt.Sprintf("both files have the same snapshot date (%s)", date), nil).
		WithContext("date", date)
}

// NewTimelineInversionError is returned when the older snapshot shows more
// completed work than the newer one.
func NewTimelineInversionError(olderCount, newerCount int) *AppError {
	return NewAppError(ErrTypeTimelineInversion,
		fmt.Sprintf("the older snapshot has %d graded activities, but the newer snapshot has only %d", olderCount, newerCount), nil).
		WithContext("older_count", olderCount).
		WithContext("newer_count", newerCount)
}

// NewOutputLockedError is returned when the report file cannot be written
// because another program holds it open.
func NewOutputLockedError(path string, cause error) *AppError {
	return NewAppError(ErrTypeOutputLocked,
		fmt.Sprintf("%s is locked or not writable", path), cause).
		WithContext("path", path)
}

// NewSaveError wraps any other failure while persisting a report.
func NewSaveError(path string, cause error) *AppError {
	return NewAppError(ErrTypeSave,
		fmt.Sprintf("failed to save %s", path), cause).
		WithContext("path", path)
}
