// Package mocks provides a mock implementation of SecurityCoordinator for testing.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

// MockSecurityCoordinator is a mock implementation of SecurityCoordinator for testing.
type MockSecurityCoordinator struct {
	mock.Mock
}

// Initialize mocks the Initialize method of SecurityCoordinator.
func (m *MockSecurityCoordinator) Initialize(
	ctx context.Context,
	photo io.Reader,
	userSalt string,
) securityDomain.InitResult {
	args := m.Called(ctx, photo, userSalt)
	return args.Get(0).(securityDomain.InitResult)
}

// Authenticate mocks the Authenticate method of SecurityCoordinator.
func (m *MockSecurityCoordinator) Authenticate(
	ctx context.Context,
	requireBiometric bool,
	cfg securityDomain.PromptConfig,
) securityDomain.AuthResult {
	args := m.Called(ctx, requireBiometric, cfg)
	return args.Get(0).(securityDomain.AuthResult)
}

// StoreSecureData mocks the StoreSecureData method of SecurityCoordinator.
func (m *MockSecurityCoordinator) StoreSecureData(
	ctx context.Context,
	userID string,
	dataType securityDomain.DataType,
	data string,
	timestamp int64,
) bool {
	args := m.Called(ctx, userID, dataType, data, timestamp)
	return args.Bool(0)
}

// GetSecureData mocks the GetSecureData method of SecurityCoordinator.
func (m *MockSecurityCoordinator) GetSecureData(
	ctx context.Context,
	userID string,
	dataType securityDomain.DataType,
) securityDomain.RecordSet {
	args := m.Called(ctx, userID, dataType)
	return args.Get(0).(securityDomain.RecordSet)
}

// GetSecurityStatus mocks the GetSecurityStatus method of SecurityCoordinator.
func (m *MockSecurityCoordinator) GetSecurityStatus(ctx context.Context) securityDomain.SecurityStatus {
	args := m.Called(ctx)
	return args.Get(0).(securityDomain.SecurityStatus)
}

// ClearSecurityData mocks the ClearSecurityData method of SecurityCoordinator.
func (m *MockSecurityCoordinator) ClearSecurityData(ctx context.Context, userID string) bool {
	args := m.Called(ctx, userID)
	return args.Bool(0)
}

// UpdateEncryptionKey mocks the UpdateEncryptionKey method of SecurityCoordinator.
func (m *MockSecurityCoordinator) UpdateEncryptionKey(
	ctx context.Context,
	photo io.Reader,
	userSalt string,
) bool {
	args := m.Called(ctx, photo, userSalt)
	return args.Bool(0)
}

// DeviceFingerprint mocks the DeviceFingerprint method of SecurityCoordinator.
func (m *MockSecurityCoordinator) DeviceFingerprint(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}
