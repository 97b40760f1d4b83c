// Package common defines shared constants and sentinel errors used across
// client and server layers of DialKeeper. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDataCorrupt marks a stored credential that no longer parses into
	// three angles. It is an integrity fault, never a match or a mismatch.
	ErrDataCorrupt = errors.New("stored credential is corrupt")

	// ErrStorage wraps backend failures other than the cases above.
	ErrStorage = errors.New("storage error")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthFailed is the only authentication failure callers outside the
	// server should ever see.
	ErrAuthFailed = errors.New("authentication failed")

	// Internal reasons, both wrap ErrAuthFailed.
	ErrUserNotFound      = fmt.Errorf("%w: user not found", ErrAuthFailed)
	ErrToleranceExceeded = fmt.Errorf("%w: tolerance exceeded", ErrAuthFailed)

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
