package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType int

const (
	ErrorTypeConfig ErrorType = iota
	ErrorTypeFileSystem
	ErrorTypePreview
	ErrorTypeUI
	ErrorTypeWatcher
	ErrorTypeTheme
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypePreview:
		return "preview"
	case ErrorTypeUI:
		return "ui"
	case ErrorTypeWatcher:
		return "watcher"
	case ErrorTypeTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type      ErrorType
	Operation string
	Path      string
	Message   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsType reports whether err, or anything it wraps, is an AppError of type t.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Type == t
}

// NewConfigError creates a new configuration error
func NewConfigError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeConfig,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewFileSystemError creates a new filesystem error
func NewFileSystemError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeFileSystem,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewPreviewError creates a new preview error
func NewPreviewError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypePreview,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewUIError creates a new UI error
func NewUIError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeUI,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewWatcherError creates a new watcher error
func NewWatcherError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeWatcher,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewThemeError creates a new theme error
func NewThemeError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeTheme,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
