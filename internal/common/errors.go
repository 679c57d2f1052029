// Package common defines shared constants and sentinel errors used across
// client and server layers of Waflow. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")
	ErrorConflict     = errors.New("conflict")
	ErrAlreadyExists  = errors.New("already exists")

	// Workflow errors.
	ErrInvalidTransition = errors.New("invalid step transition")
	ErrStepLocked        = errors.New("step locked by predecessor")

	// Document errors.
	ErrUploadBlocked = errors.New("upload blocked by existing document")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
