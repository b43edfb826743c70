// Package common defines shared constants and sentinel errors used across
// the engine. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration errors.
	ErrDuplicateUser = errors.New("user already exists")
	ErrWeakPassword  = errors.New("password too short")

	// Sign-in errors.
	ErrUserNotFound  = errors.New("user not found")
	ErrUserLocked    = errors.New("user is locked")
	ErrWrongPassword = errors.New("wrong password")

	// Credential errors (invalid or malformed bearer credential).
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidSession = errors.New("invalid session")
)
