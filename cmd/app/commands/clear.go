package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunClear wipes a user's secure records and resets the security settings
// and the in-memory session.
func RunClear(
	ctx context.Context,
	coordinator securityUsecase.SecurityCoordinator,
	logger *slog.Logger,
	w io.Writer,
	userID string,
) error {
	if !coordinator.ClearSecurityData(ctx, userID) {
		return fmt.Errorf("failed to clear security data for user %s", userID)
	}

	logger.Info("security data cleared", slog.String("user_id", userID))
	fmt.Fprintln(w, "Security data cleared")
	return nil
}
