// Package common defines sentinel errors and small helpers shared by the
// store, the scoring pipeline and the CLI. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrStorageFault = errors.New("storage fault")

	// Input errors, recoverable by the user.
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")

	// Auth errors. ErrAuthFailure never says which credential was wrong.
	ErrAuthFailure = errors.New("invalid email or password")

	// Pipeline errors.
	ErrScoringUnavailable = errors.New("scoring service unavailable")
	ErrPersistenceFailed  = errors.New("assessment was not saved")
)

// UserMessage converts an error into the text shown to the user.
// Unknown errors collapse into a generic message so internals never leak.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "Some fields are missing or invalid: " + strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	case errors.Is(err, ErrAlreadyExists):
		return "User already exists"
	case errors.Is(err, ErrAuthFailure):
		return "Invalid email or password"
	case errors.Is(err, ErrScoringUnavailable):
		return "Could not reach the risk service, please try again"
	case errors.Is(err, ErrPersistenceFailed):
		return "Failed to save assessment"
	case errors.Is(err, ErrNotFound):
		return "Nothing found"
	default:
		return "Something went wrong, please try again"
	}
}
