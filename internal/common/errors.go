// Package common defines shared constants and sentinel errors used across
// the shopfront mock store layer. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email/username or password")
	ErrDuplicateUser      = errors.New("user with this email or username already exists")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
