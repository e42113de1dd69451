// Package common defines shared constants and sentinel errors used across
// the Paygate client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Auth errors (401/403-equivalent responses).
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Resource errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (caught before any network call).
	ErrValidation = errors.New("validation error")
)
