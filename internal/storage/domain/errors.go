package domain

import (
	"github.com/leaflogic/securecore/internal/errors"
)

// Store-specific error definitions.
var (
	// ErrRecordNotFound indicates no record exists under the requested key.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrCorruptSnapshot indicates the persisted store file could not be
	// decrypted or decoded.
	ErrCorruptSnapshot = errors.New("store snapshot is corrupt")
)
