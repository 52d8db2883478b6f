// Package common defines shared sentinel errors and small helpers used across
// the loandesk client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Input errors (login form, command arguments).
	ErrorValidation = errors.New("validation error")

	// Access errors raised by the route guard and workflow dispatch.
	ErrorUnauthenticated = errors.New("authentication required")
	ErrorForbidden       = errors.New("forbidden")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
