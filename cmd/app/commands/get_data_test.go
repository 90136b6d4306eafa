package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
	usecaseMocks "github.com/leaflogic/securecore/internal/security/usecase/mocks"
)

func TestRunGetData(t *testing.T) {
	ctx := context.Background()

	t.Run("time-series-in-timestamp-order", func(t *testing.T) {
		mockCoordinator := &usecaseMocks.MockSecurityCoordinator{}
		mockCoordinator.On("GetSecureData", ctx, "alice", securityDomain.FoodEntries).
			Return(securityDomain.RecordSet{
				ByTimestamp: map[int64]string{2000: "banana", 1000: "apple"},
			})

		var buf bytes.Buffer
		err := RunGetData(ctx, mockCoordinator, &buf, "alice", "food-entries", "text")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Equal(t, []string{"1000: apple", "2000: banana"}, lines)
		mockCoordinator.AssertExpectations(t)
	})

	t.Run("profile-by-field", func(t *testing.T) {
		mockCoordinator := &usecaseMocks.MockSecurityCoordinator{}
		mockCoordinator.On("GetSecureData", ctx, "alice", securityDomain.UserProfile).
			Return(securityDomain.RecordSet{
				ByField: map[string]string{"data": "profile-blob"},
			})

		var buf bytes.Buffer
		err := RunGetData(ctx, mockCoordinator, &buf, "alice", "user-profile", "text")
		require.NoError(t, err)
		require.Contains(t, buf.String(), "data: profile-blob")
	})

	t.Run("json-format", func(t *testing.T) {
		mockCoordinator := &usecaseMocks.MockSecurityCoordinator{}
		mockCoordinator.On("GetSecureData", ctx, "alice", securityDomain.HealthMetrics).
			Return(securityDomain.RecordSet{
				ByTimestamp: map[int64]string{1000: "72.5"},
			})

		var buf bytes.Buffer
		err := RunGetData(ctx, mockCoordinator, &buf, "alice", "health-metrics", "json")
		require.NoError(t, err)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Equal(t, map[string]string{"1000": "72.5"}, decoded)
	})

	t.Run("empty", func(t *testing.T) {
		mockCoordinator := &usecaseMocks.MockSecurityCoordinator{}
		mockCoordinator.On("GetSecureData", ctx, "alice", securityDomain.ChatMessages).
			Return(securityDomain.RecordSet{})

		var buf bytes.Buffer
		err := RunGetData(ctx, mockCoordinator, &buf, "alice", "chat-messages", "text")
		require.NoError(t, err)
		require.Contains(t, buf.String(), "No records found")
	})

	t.Run("invalid-data-type", func(t *testing.T) {
		mockCoordinator := &usecaseMocks.MockSecurityCoordinator{}

		var buf bytes.Buffer
		err := RunGetData(ctx, mockCoordinator, &buf, "alice", "bogus", "text")
		require.Error(t, err)
		mockCoordinator.AssertNotCalled(t, "GetSecureData")
	})
}
