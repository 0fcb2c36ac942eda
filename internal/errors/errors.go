package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the
// harness. These codes are used to signal the outcome of the program
// execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the sweep timed out.
	ExitErrorMismatch = 3   // Indicates a kernel disagreed with the oracle.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid
// flags or values. It indicates that the application cannot proceed due
// to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies
// which field failed validation and provides a human-readable
// explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports a divergence between a kernel and the big.Int
// oracle. It carries enough context to replay the failing round
// deterministically.
type MismatchError struct {
	// Kernel is the name of the kernel that diverged.
	Kernel string
	// Seed is the RNG seed of the failing round.
	Seed int64
	// Detail describes the divergence (expected vs. actual).
	Detail string
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("kernel %q diverged from oracle (seed %d): %s", e.Kernel, e.Seed, e.Detail)
}

// NewMismatchError creates a MismatchError with a formatted detail
// message.
func NewMismatchError(kernel string, seed int64, format string, a ...any) error {
	return MismatchError{Kernel: kernel, Seed: seed, Detail: fmt.Sprintf(format, a...)}
}

// TimeoutError represents a sweep timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// SweepError encapsulates a verification sweep failure while preserving
// the original cause for inspection with errors.Is and errors.As.
type SweepError struct {
	// Cause is the underlying error that failed the sweep.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e SweepError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error.
func (e SweepError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and
// %w, so the wrapped error remains visible to errors.Is and errors.As.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or
// deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code it should produce.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	default:
		var mismatch MismatchError
		if errors.As(err, &mismatch) {
			return ExitErrorMismatch
		}
		var timeout TimeoutError
		if errors.As(err, &timeout) {
			return ExitErrorTimeout
		}
		var cfg ConfigError
		var val ValidationError
		if errors.As(err, &cfg) || errors.As(err, &val) {
			return ExitErrorConfig
		}
		return ExitErrorGeneric
	}
}
