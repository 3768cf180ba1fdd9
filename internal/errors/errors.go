package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/ritual/internal/logger"
)

// Sentinel kinds for the error taxonomy. Constructors below wrap these so
// callers can classify failures with errors.Is without string matching.
var (
	ErrValidation      = errors.New("validation")
	ErrNotFound        = errors.New("not found")
	ErrCorruptData     = errors.New("corrupt data")
	ErrSyncUnavailable = errors.New("sync unavailable")
)

// Validationf returns a validation error (bad user input)
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf returns a not-found error (unknown habit ID)
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// CorruptDataf returns a corrupt-data error (unreadable snapshot)
func CorruptDataf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorruptData, fmt.Sprintf(format, args...))
}

// SyncUnavailablef returns a sync-unavailable error (remote unreachable or unconfigured)
func SyncUnavailablef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSyncUnavailable, fmt.Sprintf(format, args...))
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsCorruptData reports whether err is a corrupt-data error
func IsCorruptData(err error) bool { return errors.Is(err, ErrCorruptData) }

// IsSyncUnavailable reports whether err is a sync-unavailable error
func IsSyncUnavailable(err error) bool { return errors.Is(err, ErrSyncUnavailable) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
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

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
