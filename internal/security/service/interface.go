// Package service provides the security primitives: hashing, device
// fingerprinting, photo metadata extraction, key derivation, and the
// biometric authentication gate.
package service

import (
	"context"
	"io"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

// Hasher defines the interface for the deterministic digest used by all
// key-derivation steps.
type Hasher interface {
	// Sum returns the lowercase hex digest of input. Empty input produces
	// the digest of the empty string, not an error.
	Sum(input []byte) string

	// SumString returns the lowercase hex digest of the input string.
	SumString(input string) string
}

// DeviceInfo provides read-only access to device and platform attributes.
// Accessors return an error when the attribute is unavailable on this
// platform; callers substitute fallback tokens rather than failing.
type DeviceInfo interface {
	Manufacturer() (string, error)
	Model() (string, error)
	Device() (string, error)
	Hardware() (string, error)
	OSVersion() (string, error)
	OSBuild() (string, error)
	InstallationID() (string, error)
	PackageID() (string, error)
}

// DeviceFingerprinter derives a stable per-installation identifier from
// device characteristics. The fingerprint is not a secret by itself.
type DeviceFingerprinter interface {
	// Fingerprint always returns a usable identifier: unavailable attributes
	// are replaced by fixed fallback tokens instead of failing the operation.
	Fingerprint(ctx context.Context) string
}

// PhotoMetadataExtractor reads EXIF-style metadata from an image stream.
type PhotoMetadataExtractor interface {
	// Extract is best-effort: absent or unparsable fields default to zero
	// values, and a totally unreadable stream yields all-default metadata.
	// It never returns an error so that metadata enhancement can never
	// block key derivation.
	Extract(r io.Reader) securityDomain.PhotoMetadata
}

// KeyDeriver combines fingerprint, optional photo metadata and a user salt
// into the enhanced key, and derives per-record storage keys from it.
// All methods are pure and deterministic.
type KeyDeriver interface {
	// DeriveEnhancedKey hashes the concatenation of the fingerprint, the
	// metadata fields (when metadata is non-nil), the user salt and the
	// application constant. GPS fields are never read.
	DeriveEnhancedKey(fingerprint string, metadata *securityDomain.PhotoMetadata, userSalt string) string

	// ValidateStrength reports whether the key satisfies the strength
	// predicate: length >= 32 with at least one letter and one digit.
	ValidateStrength(key string) bool

	// DeriveStorageKey derives the per-record namespacing token:
	// hash(enhancedKey + dataType + userID) truncated to 32 characters.
	DeriveStorageKey(enhancedKey string, dataType securityDomain.DataType, userID string) string
}

// BiometricGate wraps the platform biometric prompt behind a uniform
// asynchronous result contract.
type BiometricGate interface {
	// Available reports whether the platform can perform at least weak
	// biometric authentication. Purely a capability query.
	Available(ctx context.Context) bool

	// Authenticate shows the platform prompt and blocks until a terminal
	// outcome is reported or ctx is cancelled. Cancellation dismisses the
	// prompt and returns ctx.Err(); no outcome is delivered afterwards.
	// At most one prompt may be active at a time; callers serialize calls.
	Authenticate(ctx context.Context, cfg securityDomain.PromptConfig) (securityDomain.AuthResult, error)
}

// PromptCallbacks receives the terminal outcome of a platform prompt.
// Exactly one callback fires per prompt.
type PromptCallbacks struct {
	// OnSucceeded fires when the biometric sample was accepted.
	OnSucceeded func()
	// OnFailed fires when a sample was recognized but rejected; retry is allowed.
	OnFailed func()
	// OnError fires on a system-level failure (hardware unavailable,
	// negative button, lockout).
	OnError func(message string)
}

// BiometricPlatform is the boundary contract for the platform biometric
// service. Implementations adapt the OS prompt API; the gate adapts them to
// a single blocking call.
type BiometricPlatform interface {
	// Capability reports whether the platform supports at least weak
	// biometric authentication.
	Capability(ctx context.Context) bool

	// Begin shows the prompt and reports the terminal outcome through the
	// callbacks. Begin itself returns an error only when the prompt cannot
	// be shown at all.
	Begin(cfg securityDomain.PromptConfig, callbacks PromptCallbacks) error

	// Cancel dismisses an active prompt. Callbacks fired after Cancel are
	// ignored by the gate.
	Cancel()
}
