// Package common defines shared constants and sentinel errors used across
// client and server layers of the attendance service. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrUniqueViolation = errors.New("unique violation")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")

	// Redemption outcomes reported to the student. ErrSessionInvalid covers
	// absent, inactive and expired sessions alike.
	ErrSessionInvalid  = errors.New("session invalid")
	ErrTokenExpired    = errors.New("token expired")
	ErrStudentNotFound = errors.New("student not found")

	// Access token (teacher bearer token) errors.
	ErrInvalidToken       = errors.New("invalid token")
	ErrAccessTokenExpired = errors.New("access token expired")
)
