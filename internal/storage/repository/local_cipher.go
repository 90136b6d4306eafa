package repository

import (
	"context"
	"crypto/cipher"
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	apperrors "github.com/leaflogic/securecore/internal/errors"
	storageDomain "github.com/leaflogic/securecore/internal/storage/domain"
)

// localCipher implements ValueCipher using ChaCha20-Poly1305 with a locally
// held key. The nonce is generated per encryption and prepended to the
// ciphertext so that each value is self-contained.
//
// ChaCha20-Poly1305 is used instead of AES-GCM because the store runs on
// devices without guaranteed hardware AES acceleration.
type localCipher struct {
	aead cipher.AEAD
}

// NewLocalCipher creates a ValueCipher from a 32-byte key. The key material
// is wiped after the AEAD is constructed.
func NewLocalCipher(key []byte) (ValueCipher, error) {
	aead, err := chacha20poly1305.New(key)
	storageDomain.Zero(key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create ChaCha20-Poly1305 cipher")
	}
	return &localCipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns
// nonce || ciphertext.
func (c *localCipher) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, apperrors.Wrap(err, "failed to generate nonce")
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt splits the leading nonce off ciphertext and opens the remainder.
// Authentication failure or a truncated input returns an error.
func (c *localCipher) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "ciphertext shorter than nonce")
	}
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt value")
	}
	return plaintext, nil
}

// Close is a no-op: the cipher holds no external resources.
func (c *localCipher) Close() error {
	return nil
}
