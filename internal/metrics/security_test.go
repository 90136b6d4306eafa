package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric with
// the given name, labels and value. The exporter emits labels alphabetically
// and interleaves otel_scope_* labels between ours, so each label is matched
// independently within one line rather than as an adjacent sequence.
func assertMetricLine(t *testing.T, output, name string, labels []string, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + strings.Join(labels, `[^}]*`) + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewSecurityMetrics(t *testing.T) {
	t.Run("Success_CreateSecurityMetrics", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		securityMetrics, err := NewSecurityMetrics(provider.MeterProvider(), "test_app")

		require.NoError(t, err)
		assert.NotNil(t, securityMetrics)
	})
}

func TestSecurityMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	sm, err := NewSecurityMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulOperation", func(t *testing.T) {
		// Should not panic
		sm.RecordOperation(context.Background(), "coordinator", "initialize", "success")
	})

	t.Run("Success_RecordFailedOperation", func(t *testing.T) {
		// Should not panic
		sm.RecordOperation(context.Background(), "coordinator", "authenticate", "failed")
	})

	t.Run("Success_RecordMultipleComponents", func(t *testing.T) {
		sm.RecordOperation(context.Background(), "coordinator", "initialize", "success")
		sm.RecordOperation(context.Background(), "store", "store_health_metric", "success")
		sm.RecordOperation(context.Background(), "biometric", "authenticate", "error")
	})
}

func TestSecurityMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	sm, err := NewSecurityMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("Success_RecordDuration", func(t *testing.T) {
		sm.RecordDuration(context.Background(), "store", "get_food_entries", 25*time.Millisecond, "success")
	})
}

func TestSecurityMetrics_Exposition(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	sm, err := NewSecurityMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	sm.RecordOperation(context.Background(), "coordinator", "initialize", "success")
	sm.RecordOperation(context.Background(), "coordinator", "initialize", "success")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	provider.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assertMetricLine(t, rec.Body.String(),
		"test_app_operations_total",
		[]string{`component="coordinator"`, `operation="initialize"`, `status="success"`},
		"2",
	)
}

func TestNoOpSecurityMetrics(t *testing.T) {
	sm := NewNoOpSecurityMetrics()

	// No-op implementations must be safe to call
	sm.RecordOperation(context.Background(), "coordinator", "initialize", "success")
	sm.RecordDuration(context.Background(), "store", "put", time.Second, "error")
}
