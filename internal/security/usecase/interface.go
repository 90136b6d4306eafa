// Package usecase implements the security coordinator: the session-owning
// façade that orchestrates key derivation, authentication gating and routing
// of secure data to the store.
package usecase

import (
	"context"
	"io"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

// SecurityCoordinator is the caller-facing security API. One coordinator
// instance owns one session; callers issue operations sequentially.
type SecurityCoordinator interface {
	// Initialize derives the enhanced key from the device fingerprint, the
	// optional photo stream and the user salt, validates its strength and
	// stores it in the session. photo may be nil for device-only derivation.
	Initialize(ctx context.Context, photo io.Reader, userSalt string) securityDomain.InitResult

	// Authenticate gates the session. With requireBiometric and available
	// hardware it delegates to the biometric prompt; otherwise presence of a
	// derived key authenticates the session (the lower-assurance fallback for
	// devices without biometric hardware).
	Authenticate(
		ctx context.Context,
		requireBiometric bool,
		cfg securityDomain.PromptConfig,
	) securityDomain.AuthResult

	// StoreSecureData persists one record, routed by data type. Returns false
	// without writing when the session cannot access data. A zero timestamp
	// defaults to the current time in Unix milliseconds.
	StoreSecureData(
		ctx context.Context,
		userID string,
		dataType securityDomain.DataType,
		data string,
		timestamp int64,
	) bool

	// GetSecureData retrieves all records of one data type for a user.
	// Returns an empty set when the session cannot access data.
	GetSecureData(
		ctx context.Context,
		userID string,
		dataType securityDomain.DataType,
	) securityDomain.RecordSet

	// GetSecurityStatus reports a read-only snapshot of the persisted
	// settings, the live biometric capability and the session flags.
	GetSecurityStatus(ctx context.Context) securityDomain.SecurityStatus

	// ClearSecurityData wipes the user's records and settings and resets the
	// session. The session reset is unconditional even when the wipe fails.
	ClearSecurityData(ctx context.Context, userID string) bool

	// UpdateEncryptionKey re-runs Initialize with a new photo. True only if
	// re-derivation succeeds.
	UpdateEncryptionKey(ctx context.Context, photo io.Reader, userSalt string) bool

	// DeviceFingerprint returns the current device fingerprint. Not a secret.
	DeviceFingerprint(ctx context.Context) string
}
