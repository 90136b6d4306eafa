// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/leaflogic/securecore/internal/app"
	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parseDataType converts a data type string to securityDomain.DataType.
// Returns an error if the data type string is invalid.
func parseDataType(dataTypeStr string) (securityDomain.DataType, error) {
	switch dataTypeStr {
	case "health-metrics":
		return securityDomain.HealthMetrics, nil
	case "food-entries":
		return securityDomain.FoodEntries, nil
	case "user-profile":
		return securityDomain.UserProfile, nil
	case "chat-messages":
		return securityDomain.ChatMessages, nil
	case "goals-and-preferences":
		return securityDomain.GoalsAndPreferences, nil
	default:
		return "", fmt.Errorf(
			"invalid data type: %s (valid options: health-metrics, food-entries, user-profile, chat-messages, goals-and-preferences)",
			dataTypeStr,
		)
	}
}
