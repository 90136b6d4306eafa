// Package repository implements persistence for encrypted records.
// Repositories support a local file snapshot plus PostgreSQL and MySQL.
package repository

import (
	"context"
)

// ValueCipher encrypts and decrypts individual record values. The store
// service runs every value through the cipher before it reaches a repository,
// so repositories only ever see ciphertext.
type ValueCipher interface {
	// Encrypt returns the authenticated ciphertext of plaintext.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)

	// Decrypt verifies and decrypts ciphertext produced by Encrypt.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)

	// Close releases any resources held by the cipher.
	Close() error
}

// KVRepository persists opaque record values under string keys.
type KVRepository interface {
	// Put stores value under key, replacing any existing record.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value stored under key, or domain.ErrRecordNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// GetAll returns every record whose key starts with prefix.
	GetAll(ctx context.Context, prefix string) (map[string][]byte, error)

	// RemovePrefixes deletes every record whose key starts with any of the
	// given prefixes.
	RemovePrefixes(ctx context.Context, prefixes ...string) error

	// Close releases the repository's resources.
	Close() error
}
