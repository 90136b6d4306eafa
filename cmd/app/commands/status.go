package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunStatus prints a snapshot of the security subsystem: persisted settings,
// biometric capability and in-memory session flags.
func RunStatus(
	ctx context.Context,
	coordinator securityUsecase.SecurityCoordinator,
	w io.Writer,
	format string,
) error {
	status := coordinator.GetSecurityStatus(ctx)

	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]bool{
			"is_initialized":     status.IsInitialized,
			"is_photo_enhanced":  status.IsPhotoEnhanced,
			"has_biometric_auth": status.HasBiometricAuth,
			"is_authenticated":   status.IsAuthenticated,
			"has_valid_key":      status.HasValidKey,
		})
	}

	fmt.Fprintf(w, "Initialized:        %t\n", status.IsInitialized)
	fmt.Fprintf(w, "Photo enhanced:     %t\n", status.IsPhotoEnhanced)
	fmt.Fprintf(w, "Biometric capable:  %t\n", status.HasBiometricAuth)
	fmt.Fprintf(w, "Authenticated:      %t\n", status.IsAuthenticated)
	fmt.Fprintf(w, "Has valid key:      %t\n", status.HasValidKey)
	return nil
}
