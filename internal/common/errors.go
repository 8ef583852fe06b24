// Package common defines shared constants and sentinel errors used across
// the student-track server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Login errors. Deliberately a single undifferentiated value: callers
	// must not be able to tell a bad identifier from a bad password or a
	// wrong claimed role.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Registration conflicts. Differentiated on purpose, duplicate
	// username/email is not a security-sensitive disclosure.
	ErrorUsernameTaken = errors.New("username already exists")
	ErrorEmailTaken    = errors.New("email already registered")

	// Token lifecycle errors. Internal only: the HTTP layer collapses all
	// of them into a uniform unauthenticated response.
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
)
