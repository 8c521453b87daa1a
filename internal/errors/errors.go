package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/hard75/hard75/internal/logger"
)

// ErrNotFound signals that no persisted challenge exists yet. Callers treat
// it as a prompt to initialize rather than a failure.
var ErrNotFound = errors.New("no challenge found")

// ValidationError reports malformed input (weight entries, backup payloads)
// with a human-readable reason. No state change accompanies it.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// NewValidation creates a ValidationError with a formatted reason
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a read/write failure against the blob store. In-memory
// state is left as the last successfully-applied value.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the given operation
func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
