// Package mocks provides a mock implementation of SecureStore for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSecureStore is a mock implementation of SecureStore for testing.
type MockSecureStore struct {
	mock.Mock
}

// StoreUserProfile mocks the StoreUserProfile method of SecureStore.
func (m *MockSecureStore) StoreUserProfile(ctx context.Context, userID, field, value string) bool {
	args := m.Called(ctx, userID, field, value)
	return args.Bool(0)
}

// GetUserProfile mocks the GetUserProfile method of SecureStore.
func (m *MockSecureStore) GetUserProfile(ctx context.Context, userID string) map[string]string {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return map[string]string{}
	}
	return args.Get(0).(map[string]string)
}

// StoreHealthMetric mocks the StoreHealthMetric method of SecureStore.
func (m *MockSecureStore) StoreHealthMetric(
	ctx context.Context,
	userID, metricType, value string,
	timestamp int64,
) bool {
	args := m.Called(ctx, userID, metricType, value, timestamp)
	return args.Bool(0)
}

// GetHealthMetrics mocks the GetHealthMetrics method of SecureStore.
func (m *MockSecureStore) GetHealthMetrics(
	ctx context.Context,
	userID, metricType string,
) map[int64]string {
	args := m.Called(ctx, userID, metricType)
	if args.Get(0) == nil {
		return map[int64]string{}
	}
	return args.Get(0).(map[int64]string)
}

// StoreFoodEntry mocks the StoreFoodEntry method of SecureStore.
func (m *MockSecureStore) StoreFoodEntry(ctx context.Context, userID, value string, timestamp int64) bool {
	args := m.Called(ctx, userID, value, timestamp)
	return args.Bool(0)
}

// GetFoodEntries mocks the GetFoodEntries method of SecureStore.
func (m *MockSecureStore) GetFoodEntries(ctx context.Context, userID string) map[int64]string {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return map[int64]string{}
	}
	return args.Get(0).(map[int64]string)
}

// ClearUserData mocks the ClearUserData method of SecureStore.
func (m *MockSecureStore) ClearUserData(ctx context.Context, userID string) bool {
	args := m.Called(ctx, userID)
	return args.Bool(0)
}

// SetSetting mocks the SetSetting method of SecureStore.
func (m *MockSecureStore) SetSetting(ctx context.Context, name, value string) bool {
	args := m.Called(ctx, name, value)
	return args.Bool(0)
}

// GetSetting mocks the GetSetting method of SecureStore.
func (m *MockSecureStore) GetSetting(ctx context.Context, name string) string {
	args := m.Called(ctx, name)
	return args.String(0)
}

// Close mocks the Close method of SecureStore.
func (m *MockSecureStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
