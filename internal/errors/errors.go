package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrNotFound     ErrorType = "NOT_FOUND"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
	ErrConflict     ErrorType = "CONFLICT"
	ErrInternal     ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Field     string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

func isType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return true
	}
	return isType(err, ErrNotFound)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return isType(err, ErrInvalidInput)
}

// IsValidationError is an alias for IsInvalidInput
func IsValidationError(err error) bool {
	return IsInvalidInput(err)
}

// IsConflict reports whether err is a conflict, including a sync already in progress
func IsConflict(err error) bool {
	var inProgress *SyncInProgressError
	if stderrors.As(err, &inProgress) {
		return true
	}
	return isType(err, ErrConflict)
}

// FieldOf returns the offending field of a validation error, if any
func FieldOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// MessageOf returns the user facing message of an AppError, or err.Error() otherwise
func MessageOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return nf.Error()
	}
	return err.Error()
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, err error) *AppError {
	return New(ErrNotFound, message, err)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

// NewFieldValidationError creates a validation error bound to a single input field
func NewFieldValidationError(field, message string) *AppError {
	appErr := New(ErrInvalidInput, message, nil)
	appErr.Field = field
	return appErr
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, err error) *AppError {
	return New(ErrConflict, message, err)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}

// SyncInProgressError is returned when a catalog sync is requested while one is running
type SyncInProgressError struct {
	StartedAt time.Time
}

func (e *SyncInProgressError) Error() string {
	if e.StartedAt.IsZero() {
		return "catalog sync already in progress"
	}
	return fmt.Sprintf("catalog sync already in progress (started %s)", e.StartedAt.Format(time.RFC3339))
}

// NewSyncInProgressError creates a new SyncInProgressError
func NewSyncInProgressError(startedAt time.Time) error {
	return &SyncInProgressError{
		StartedAt: startedAt,
	}
}

// NotFoundError represents a not found error
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewResourceNotFoundError creates a new NotFoundError for a specific resource
func NewResourceNotFoundError(resource, id string) error {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
