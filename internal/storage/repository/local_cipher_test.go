package repository

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewLocalCipher(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cipher, err := NewLocalCipher(generateKey(t))
		require.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("Error_InvalidKeySize", func(t *testing.T) {
		cipher, err := NewLocalCipher(make([]byte, 16))
		assert.Error(t, err)
		assert.Nil(t, cipher)
	})

	t.Run("KeyMaterialIsWiped", func(t *testing.T) {
		key := generateKey(t)
		_, err := NewLocalCipher(key)
		require.NoError(t, err)
		assert.Equal(t, make([]byte, 32), key)
	})
}

func TestLocalCipher_EncryptDecrypt(t *testing.T) {
	ctx := context.Background()
	cipher, err := NewLocalCipher(generateKey(t))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		plaintext := []byte("85.5 kg")

		ciphertext, err := cipher.Encrypt(ctx, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		decrypted, err := cipher.Decrypt(ctx, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("fresh nonce per encryption", func(t *testing.T) {
		plaintext := []byte("same input")

		first, err := cipher.Encrypt(ctx, plaintext)
		require.NoError(t, err)
		second, err := cipher.Encrypt(ctx, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("tampered ciphertext fails authentication", func(t *testing.T) {
		ciphertext, err := cipher.Encrypt(ctx, []byte("secret"))
		require.NoError(t, err)

		ciphertext[len(ciphertext)-1] ^= 0xFF
		_, err = cipher.Decrypt(ctx, ciphertext)
		assert.Error(t, err)
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		_, err := cipher.Decrypt(ctx, []byte{0x01, 0x02})
		assert.Error(t, err)
	})

	t.Run("wrong key fails authentication", func(t *testing.T) {
		other, err := NewLocalCipher(generateKey(t))
		require.NoError(t, err)

		ciphertext, err := cipher.Encrypt(ctx, []byte("secret"))
		require.NoError(t, err)

		_, err = other.Decrypt(ctx, ciphertext)
		assert.Error(t, err)
	})
}

func TestLocalCipher_Close(t *testing.T) {
	cipher, err := NewLocalCipher(generateKey(t))
	require.NoError(t, err)
	assert.NoError(t, cipher.Close())
}
