package service

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/leaflogic/securecore/internal/errors"
)

// hostDeviceInfo implements DeviceInfo by reading host platform sources:
// DMI identifiers where the kernel exposes them, runtime constants, and a
// persistent installation id generated on first use.
type hostDeviceInfo struct {
	appID    string
	stateDir string
}

// NewHostDeviceInfo creates a DeviceInfo backed by the host platform.
// appID is the application package identifier; stateDir holds the
// persistent installation id file.
func NewHostDeviceInfo(appID, stateDir string) DeviceInfo {
	return &hostDeviceInfo{appID: appID, stateDir: stateDir}
}

// Manufacturer returns the hardware vendor reported by DMI.
func (h *hostDeviceInfo) Manufacturer() (string, error) {
	return readTrimmed("/sys/devices/virtual/dmi/id/sys_vendor")
}

// Model returns the hardware product name reported by DMI.
func (h *hostDeviceInfo) Model() (string, error) {
	return readTrimmed("/sys/devices/virtual/dmi/id/product_name")
}

// Device returns the host name.
func (h *hostDeviceInfo) Device() (string, error) {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "", apperrors.Wrap(apperrors.ErrUnavailable, "hostname")
	}
	return name, nil
}

// Hardware returns the CPU architecture.
func (h *hostDeviceInfo) Hardware() (string, error) {
	return runtime.GOARCH, nil
}

// OSVersion returns the operating system identifier.
func (h *hostDeviceInfo) OSVersion() (string, error) {
	return runtime.GOOS, nil
}

// OSBuild returns the kernel release string.
func (h *hostDeviceInfo) OSBuild() (string, error) {
	return readTrimmed("/proc/sys/kernel/osrelease")
}

// InstallationID returns the persistent per-installation identifier,
// generating and persisting a new one on first use.
func (h *hostDeviceInfo) InstallationID() (string, error) {
	path := filepath.Join(h.stateDir, "installation_id")

	if data, err := os.ReadFile(path); err == nil {
		id := strings.TrimSpace(string(data))
		if id != "" {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(h.stateDir, 0o700); err != nil {
		return "", apperrors.Wrap(err, "failed to create state directory")
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", apperrors.Wrap(err, "failed to persist installation id")
	}

	return id, nil
}

// PackageID returns the configured application package identifier.
func (h *hostDeviceInfo) PackageID() (string, error) {
	if h.appID == "" {
		return "", apperrors.Wrap(apperrors.ErrUnavailable, "app id")
	}
	return h.appID, nil
}

// readTrimmed reads a single-value platform file, trimming whitespace.
func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Wrapf(apperrors.ErrUnavailable, "read %s", path)
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", apperrors.Wrapf(apperrors.ErrUnavailable, "empty %s", path)
	}
	return value, nil
}
