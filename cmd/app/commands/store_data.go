package commands

import (
	"context"
	"fmt"
	"io"

	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
)

// RunStoreData stores one secure record for a user. A zero timestamp lets
// the coordinator stamp the record with the current time.
func RunStoreData(
	ctx context.Context,
	coordinator securityUsecase.SecurityCoordinator,
	w io.Writer,
	userID string,
	dataTypeStr string,
	data string,
	timestamp int64,
) error {
	dataType, err := parseDataType(dataTypeStr)
	if err != nil {
		return err
	}

	if !coordinator.StoreSecureData(ctx, userID, dataType, data, timestamp) {
		return fmt.Errorf("failed to store data (is the session initialized and authenticated?)")
	}

	fmt.Fprintln(w, "Stored")
	return nil
}
