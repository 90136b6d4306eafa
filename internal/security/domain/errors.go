package domain

import (
	"github.com/leaflogic/securecore/internal/errors"
)

// Security operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors to
// provide context for security failures. They are surfaced through result
// types at the coordinator boundary, not thrown past public functions.
var (
	// ErrWeakKey indicates a derived key failed the strength predicate
	// (length >= 32 with at least one letter and one digit). This guards
	// against degenerate or empty inputs reaching the hasher.
	ErrWeakKey = errors.Wrap(errors.ErrInvalidInput, "derived key too weak")

	// ErrNotInitialized indicates no enhanced key has been derived in this
	// session. Initialize must succeed before the key-presence fallback
	// authentication path can be used.
	ErrNotInitialized = errors.Wrap(errors.ErrUnauthorized, "security not initialized")

	// ErrNotAuthenticated indicates the session has not passed authentication.
	ErrNotAuthenticated = errors.Wrap(errors.ErrUnauthorized, "session not authenticated")

	// ErrBiometricUnavailable indicates the device cannot perform biometric
	// authentication.
	ErrBiometricUnavailable = errors.Wrap(errors.ErrUnavailable, "biometric authentication unavailable")

	// ErrTooManyAttempts indicates authentication attempts exceeded the
	// configured rate limit.
	ErrTooManyAttempts = errors.Wrap(errors.ErrUnauthorized, "too many authentication attempts")
)
