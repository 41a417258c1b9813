// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Loader errors.
	ErrNoDataDir  = errors.New("data directory not found")
	ErrNoCSVFiles = errors.New("no CSV files found")

	// Database errors.
	ErrNotFound = errors.New("not found")

	// Aggregation errors.
	ErrNoData = errors.New("no data")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsConfigError reports whether an error belongs to the fatal
// configuration class: the data directory or its CSV files are absent.
// These abort the session with no retry.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNoDataDir) ||
		errors.Is(err, ErrNoCSVFiles) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}
