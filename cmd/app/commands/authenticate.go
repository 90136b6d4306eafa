package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunAuthenticate gates the session via biometrics or the key-presence
// fallback. A Failed outcome is reported without an error so callers can
// retry; Error outcomes abort the command.
func RunAuthenticate(
	ctx context.Context,
	coordinator securityUsecase.SecurityCoordinator,
	logger *slog.Logger,
	w io.Writer,
	requireBiometric bool,
) error {
	result := coordinator.Authenticate(ctx, requireBiometric, securityDomain.DefaultPromptConfig())
	switch result.Status {
	case securityDomain.AuthSuccess:
		logger.Info("session authenticated", slog.Bool("biometric_requested", requireBiometric))
		fmt.Fprintln(w, "Authenticated")
		return nil
	case securityDomain.AuthFailed:
		fmt.Fprintln(w, "Authentication failed: biometric sample rejected, try again")
		return nil
	default:
		return fmt.Errorf("authentication error: %s", result.Message)
	}
}
