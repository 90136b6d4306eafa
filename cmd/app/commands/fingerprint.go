package commands

import (
	"context"
	"fmt"
	"io"

	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunFingerprint prints the stable device fingerprint.
func RunFingerprint(
	ctx context.Context,
	coordinator securityUsecase.SecurityCoordinator,
	w io.Writer,
) error {
	fingerprint := coordinator.DeviceFingerprint(ctx)
	if fingerprint == "" {
		return fmt.Errorf("failed to compute device fingerprint")
	}

	fmt.Fprintln(w, fingerprint)
	return nil
}
