package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hasher implements the Hasher interface using SHA-256.
//
// The hasher is the single digest primitive behind fingerprinting and key
// derivation. It is stateless, deterministic, and safe for concurrent use.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum returns the lowercase hex digest of input.
// Empty input hashes to the digest of the empty string.
func (h *SHA256Hasher) Sum(input []byte) string {
	digest := sha256.Sum256(input)
	return hex.EncodeToString(digest[:])
}

// SumString returns the lowercase hex digest of the input string.
func (h *SHA256Hasher) SumString(input string) string {
	return h.Sum([]byte(input))
}
