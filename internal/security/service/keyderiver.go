package service

import (
	"strconv"
	"strings"
	"unicode"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

const (
	// appKeyConstant is the fixed application constant folded into every
	// enhanced key derivation.
	appKeyConstant = "LeafLogic_Security_2024"

	// storageKeyLength is the truncated length of derived storage keys.
	storageKeyLength = 32

	// minKeyLength is the minimum accepted enhanced key length.
	minKeyLength = 32
)

// keyDeriver implements KeyDeriver on top of the Hasher.
type keyDeriver struct {
	hasher Hasher
}

// NewKeyDeriver creates a KeyDeriver using the given hasher.
func NewKeyDeriver(hasher Hasher) KeyDeriver {
	return &keyDeriver{hasher: hasher}
}

// DeriveEnhancedKey builds the enhanced key from the device fingerprint,
// the optional photo metadata, and the user salt.
//
// Concatenation order: fingerprint, then (when metadata is present) make,
// model, date-time, orientation, width, height, software, then the salt when
// non-empty, then the application constant. GPS coordinates are deliberately
// never read here: the photo's location must not influence the key.
func (k *keyDeriver) DeriveEnhancedKey(
	fingerprint string,
	metadata *securityDomain.PhotoMetadata,
	userSalt string,
) string {
	var b strings.Builder

	b.WriteString(fingerprint)

	if metadata != nil {
		b.WriteString(metadata.Make)
		b.WriteString(metadata.Model)
		b.WriteString(metadata.DateTime)
		b.WriteString(strconv.Itoa(metadata.Orientation))
		b.WriteString(strconv.Itoa(metadata.ImageWidth))
		b.WriteString(strconv.Itoa(metadata.ImageHeight))
		b.WriteString(metadata.Software)
	}

	if userSalt != "" {
		b.WriteString(userSalt)
	}

	b.WriteString(appKeyConstant)

	return k.hasher.SumString(b.String())
}

// ValidateStrength reports whether the key meets the strength predicate:
// at least 32 characters with at least one digit and one letter. Any
// well-formed 256-bit hex digest passes; the check guards against degenerate
// inputs reaching the hasher.
func (k *keyDeriver) ValidateStrength(key string) bool {
	if len(key) < minKeyLength {
		return false
	}

	var hasDigit, hasLetter bool
	for _, r := range key {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
		if hasDigit && hasLetter {
			return true
		}
	}

	return false
}

// DeriveStorageKey derives the per-record namespacing token for a data type
// and user: hash(enhancedKey + dataType + userID) truncated to 32 characters.
// The token namespaces health-metric records; the underlying store performs
// the actual encryption.
func (k *keyDeriver) DeriveStorageKey(
	enhancedKey string,
	dataType securityDomain.DataType,
	userID string,
) string {
	digest := k.hasher.SumString(enhancedKey + dataType.String() + userID)
	return digest[:storageKeyLength]
}
