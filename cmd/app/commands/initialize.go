package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunInitialize derives and installs the enhanced encryption key, optionally
// strengthened by a photo's metadata. The key is printed so callers can
// verify derivation; it is not persisted anywhere outside the session.
func RunInitialize(
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

	result := coordinator.Initialize(ctx, photo, userSalt)
	switch result.Status {
	case securityDomain.InitSuccess:
		logger.Info("security initialized", slog.Bool("photo_enhanced", photo != nil))
		fmt.Fprintf(w, "Security initialized\nDerived key: %s\n", result.Key)
		return nil
	case securityDomain.InitWeakKey:
		return fmt.Errorf("derived key failed strength validation")
	default:
		return fmt.Errorf("security initialization failed: %s", result.Message)
	}
}
