package domain

// InitStatus is the outcome tag of security initialization.
type InitStatus string

const (
	// InitSuccess indicates a key was derived, validated and installed in the session.
	InitSuccess InitStatus = "success"
	// InitWeakKey indicates the derived key failed the strength predicate.
	// The session is left untouched.
	InitWeakKey InitStatus = "weak_key"
	// InitError indicates an unexpected failure during the derivation pipeline.
	InitError InitStatus = "error"
)

// InitResult is the result of security initialization.
// Key is populated only when Status is InitSuccess; Message is populated on
// InitWeakKey and InitError.
type InitResult struct {
	Status  InitStatus
	Key     string
	Message string
}

// AuthStatus is the outcome tag of an authentication attempt.
type AuthStatus string

const (
	// AuthSuccess indicates the user was authenticated.
	AuthSuccess AuthStatus = "success"
	// AuthFailed indicates a recognized-but-rejected biometric sample.
	// Callers may retry.
	AuthFailed AuthStatus = "failed"
	// AuthError indicates a system-level failure: hardware unavailable,
	// user cancellation via the negative button, or lockout. Callers should
	// fall back to an alternate path rather than retry blindly.
	AuthError AuthStatus = "error"
)

// AuthResult is the result of an authentication attempt.
// Message is populated only when Status is AuthError.
type AuthResult struct {
	Status  AuthStatus
	Message string
}

// PromptConfig configures the platform biometric prompt.
type PromptConfig struct {
	Title              string
	Subtitle           string
	NegativeButtonText string
}

// DefaultPromptConfig returns the prompt text used when callers pass no configuration.
func DefaultPromptConfig() PromptConfig {
	return PromptConfig{
		Title:              "Biometric Authentication",
		Subtitle:           "Use your fingerprint or face to access your health data",
		NegativeButtonText: "Cancel",
	}
}

// SecurityStatus is a read-only snapshot of the security subsystem, combining
// persisted settings, a live biometric capability query, and in-memory session flags.
type SecurityStatus struct {
	IsInitialized    bool
	IsPhotoEnhanced  bool
	HasBiometricAuth bool
	IsAuthenticated  bool
	HasValidKey      bool
}

// RecordSet holds the records retrieved for one user and data type.
// Exactly one of the maps is populated: ByTimestamp for time-series types
// (health metrics, food entries, generic buckets) and ByField for the user
// profile, whose records carry no meaningful timestamp.
type RecordSet struct {
	ByTimestamp map[int64]string
	ByField     map[string]string
}

// Empty reports whether the set holds no records.
func (r RecordSet) Empty() bool {
	return len(r.ByTimestamp) == 0 && len(r.ByField) == 0
}
