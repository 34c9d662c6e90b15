// Package errors holds the sentinel errors shared by storage and the planner,
// and the helpers commands use to report failures.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/daydial/internal/logger"
)

var (
	// ErrNotFound is returned when an activity, snapshot or setting does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating something whose key is taken
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput is returned for malformed dates, hours or activity fields
	ErrInvalidInput = errors.New("invalid input")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// NotFoundf wraps ErrNotFound with a formatted message
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// InvalidInputf wraps ErrInvalidInput with a formatted message
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
