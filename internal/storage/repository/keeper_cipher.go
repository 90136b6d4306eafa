package repository

import (
	"context"

	"gocloud.dev/secrets"

	apperrors "github.com/leaflogic/securecore/internal/errors"

	// Register all keeper provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// keeperCipher implements ValueCipher on top of a gocloud.dev secrets.Keeper.
type keeperCipher struct {
	keeper *secrets.Keeper
}

// OpenKeeperCipher opens a ValueCipher backed by the keeper at keeperURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func OpenKeeperCipher(ctx context.Context, keeperURI string) (ValueCipher, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open keeper")
	}
	return &keeperCipher{keeper: keeper}, nil
}

// Encrypt encrypts plaintext through the keeper.
func (k *keeperCipher) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	ciphertext, err := k.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt value")
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext through the keeper.
func (k *keeperCipher) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	plaintext, err := k.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt value")
	}
	return plaintext, nil
}

// Close closes the underlying keeper.
func (k *keeperCipher) Close() error {
	return k.keeper.Close()
}
