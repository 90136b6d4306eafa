package service

import (
	"context"
	"log/slog"
	"strings"
)

// deviceFingerprinter implements DeviceFingerprinter by concatenating device
// attributes in a fixed order and hashing the result.
//
// Attribute order: manufacturer, model, device, hardware, OS version,
// OS build, installation id, package id. The order is part of the contract;
// changing it changes every fingerprint. Components are joined with a pipe
// so that adjacent attributes cannot collide across the boundary.
type deviceFingerprinter struct {
	info   DeviceInfo
	hasher Hasher
	logger *slog.Logger
}

// NewDeviceFingerprinter creates a DeviceFingerprinter from the given device
// info source and hasher.
func NewDeviceFingerprinter(info DeviceInfo, hasher Hasher, logger *slog.Logger) DeviceFingerprinter {
	return &deviceFingerprinter{info: info, hasher: hasher, logger: logger}
}

// Fingerprint derives the stable per-installation identifier. An unavailable
// attribute is replaced by its fixed fallback token; the operation always
// returns a usable string, trading fingerprint precision for availability.
func (f *deviceFingerprinter) Fingerprint(ctx context.Context) string {
	attributes := []struct {
		name string
		read func() (string, error)
	}{
		{"manufacturer", f.info.Manufacturer},
		{"model", f.info.Model},
		{"device", f.info.Device},
		{"hardware", f.info.Hardware},
		{"os-version", f.info.OSVersion},
		{"os-build", f.info.OSBuild},
		{"installation-id", f.info.InstallationID},
		{"package-id", f.info.PackageID},
	}

	components := make([]string, 0, len(attributes))
	for _, attr := range attributes {
		value, err := attr.read()
		if err != nil || value == "" {
			f.logger.Debug("device attribute unavailable, using fallback",
				slog.String("attribute", attr.name),
			)
			value = "fallback_" + attr.name
		}
		components = append(components, value)
	}

	return f.hasher.SumString(strings.Join(components, "|"))
}
