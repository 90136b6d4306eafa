package repository

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateLocalKeeperURI generates a base64key:// URI for testing.
func generateLocalKeeperURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestOpenKeeperCipher(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_LocalKeeper", func(t *testing.T) {
		cipher, err := OpenKeeperCipher(ctx, generateLocalKeeperURI(t))
		require.NoError(t, err)
		require.NotNil(t, cipher)
		assert.NoError(t, cipher.Close())
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		cipher, err := OpenKeeperCipher(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, cipher)
	})

	t.Run("Error_EmptyURI", func(t *testing.T) {
		cipher, err := OpenKeeperCipher(ctx, "")
		assert.Error(t, err)
		assert.Nil(t, cipher)
	})
}

func TestKeeperCipher_EncryptDecrypt(t *testing.T) {
	ctx := context.Background()
	cipher, err := OpenKeeperCipher(ctx, generateLocalKeeperURI(t))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, cipher.Close())
	}()

	t.Run("round trip", func(t *testing.T) {
		plaintext := []byte(`{"calories": 520, "meal": "lunch"}`)

		ciphertext, err := cipher.Encrypt(ctx, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		decrypted, err := cipher.Decrypt(ctx, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("invalid ciphertext", func(t *testing.T) {
		_, err := cipher.Decrypt(ctx, []byte("not a valid ciphertext"))
		assert.Error(t, err)
	})

	t.Run("different keepers cannot read each other", func(t *testing.T) {
		other, err := OpenKeeperCipher(ctx, generateLocalKeeperURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, other.Close())
		}()

		ciphertext, err := cipher.Encrypt(ctx, []byte("secret"))
		require.NoError(t, err)

		_, err = other.Decrypt(ctx, ciphertext)
		assert.Error(t, err)
	})
}
