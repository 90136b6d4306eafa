// Package mocks provides mock implementations of the security service
// interfaces for testing.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

// MockDeviceFingerprinter is a mock implementation of DeviceFingerprinter.
type MockDeviceFingerprinter struct {
	mock.Mock
}

// Fingerprint mocks the Fingerprint method of DeviceFingerprinter.
func (m *MockDeviceFingerprinter) Fingerprint(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

// MockPhotoMetadataExtractor is a mock implementation of PhotoMetadataExtractor.
type MockPhotoMetadataExtractor struct {
	mock.Mock
}

// Extract mocks the Extract method of PhotoMetadataExtractor.
func (m *MockPhotoMetadataExtractor) Extract(r io.Reader) securityDomain.PhotoMetadata {
	args := m.Called(r)
	return args.Get(0).(securityDomain.PhotoMetadata)
}

// MockKeyDeriver is a mock implementation of KeyDeriver.
type MockKeyDeriver struct {
	mock.Mock
}

// DeriveEnhancedKey mocks the DeriveEnhancedKey method of KeyDeriver.
func (m *MockKeyDeriver) DeriveEnhancedKey(
	fingerprint string,
	metadata *securityDomain.PhotoMetadata,
	userSalt string,
) string {
	args := m.Called(fingerprint, metadata, userSalt)
	return args.String(0)
}

// ValidateStrength mocks the ValidateStrength method of KeyDeriver.
func (m *MockKeyDeriver) ValidateStrength(key string) bool {
	args := m.Called(key)
	return args.Bool(0)
}

// DeriveStorageKey mocks the DeriveStorageKey method of KeyDeriver.
func (m *MockKeyDeriver) DeriveStorageKey(
	enhancedKey string,
	dataType securityDomain.DataType,
	userID string,
) string {
	args := m.Called(enhancedKey, dataType, userID)
	return args.String(0)
}

// MockBiometricGate is a mock implementation of BiometricGate.
type MockBiometricGate struct {
	mock.Mock
}

// Available mocks the Available method of BiometricGate.
func (m *MockBiometricGate) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Authenticate mocks the Authenticate method of BiometricGate.
func (m *MockBiometricGate) Authenticate(
	ctx context.Context,
	cfg securityDomain.PromptConfig,
) (securityDomain.AuthResult, error) {
	args := m.Called(ctx, cfg)
	return args.Get(0).(securityDomain.AuthResult), args.Error(1)
}
