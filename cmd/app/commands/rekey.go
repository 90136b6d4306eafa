package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunRekey re-derives the session key from fresh inputs. Health metric
// storage keys depend on the session key, so records written under the old
// key stop being addressable after a successful rekey.
func RunRekey(
	ctx context.Context,
	coordinator securityUsecase.SecurityCoordinator,
	logger *slog.Logger,
	w io.Writer,
	photoPath string,
	userSalt string,
) error {
	var photo io.Reader
	if photoPath != "" {
		file, err := os.Open(photoPath)
		if err != nil {
			return fmt.Errorf("failed to open photo: %w", err)
		}
		defer file.Close()
		photo = file
	}

	if !coordinator.UpdateEncryptionKey(ctx, photo, userSalt) {
		return fmt.Errorf("failed to update encryption key")
	}

	logger.Info("encryption key updated", slog.Bool("photo_enhanced", photo != nil))
	fmt.Fprintln(w, "Encryption key updated")
	return nil
}
