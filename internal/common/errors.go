// Package common defines sentinel errors shared across the hackline client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote-entity errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")

	// Input validation, local or service-reported.
	ErrValidation = errors.New("validation error")
	ErrInvalidURL = errors.New("invalid url")

	// Transport failures and unexpected remote statuses.
	ErrRemote = errors.New("remote service error")
)
