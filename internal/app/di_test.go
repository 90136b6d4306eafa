package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"path/filepath"
	"testing"

	"github.com/leaflogic/securecore/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("failed to generate store key: %v", err)
	}
	stateDir := t.TempDir()

	return &config.Config{
		AppID:            "com.midoriai.leaflogic",
		StateDir:         stateDir,
		StoreDriver:      "file",
		StorePath:        filepath.Join(stateDir, "store.json"),
		StoreKeyBase64:   base64.StdEncoding.EncodeToString(key),
		LogLevel:         "info",
		MetricsEnabled:   true,
		MetricsNamespace: "securecore",
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig(t)
	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger is a singleton.
func TestContainerLogger(t *testing.T) {
	container := NewContainer(testConfig(t))

	logger := container.Logger()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	if logger != container.Logger() {
		t.Error("expected same logger instance on multiple calls")
	}
}

// TestContainerSecurityCoordinator verifies the full dependency chain assembles.
func TestContainerSecurityCoordinator(t *testing.T) {
	container := NewContainer(testConfig(t))
	ctx := context.Background()

	coordinator, err := container.SecurityCoordinator(ctx)
	if err != nil {
		t.Fatalf("unexpected error building coordinator: %v", err)
	}
	if coordinator == nil {
		t.Fatal("expected non-nil coordinator")
	}

	// Singleton behavior
	again, err := container.SecurityCoordinator(ctx)
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if coordinator != again {
		t.Error("expected same coordinator instance on multiple calls")
	}

	if err := container.Shutdown(ctx); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}

// TestContainerMissingCipherConfig verifies that a missing cipher configuration
// surfaces as an initialization error.
func TestContainerMissingCipherConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.KeeperURI = ""
	cfg.StoreKeyBase64 = ""
	container := NewContainer(cfg)
	ctx := context.Background()

	if _, err := container.ValueCipher(ctx); err == nil {
		t.Error("expected error when no cipher is configured")
	}

	// The error is sticky on repeat calls
	if _, err := container.ValueCipher(ctx); err == nil {
		t.Error("expected error on second call to ValueCipher()")
	}
}

// TestContainerUnsupportedStoreDriver verifies driver validation.
func TestContainerUnsupportedStoreDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreDriver = "invalid_driver"
	container := NewContainer(cfg)

	if _, err := container.KVRepository(); err == nil {
		t.Error("expected error for unsupported store driver")
	}
}

// TestContainerMetricsDisabled verifies the no-op metrics path.
func TestContainerMetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	container := NewContainer(cfg)

	securityMetrics, err := container.SecurityMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if securityMetrics == nil {
		t.Fatal("expected non-nil security metrics")
	}
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(testConfig(t))

	if err := container.Shutdown(context.TODO()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}
