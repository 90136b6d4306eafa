// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/time/rate"

	"github.com/leaflogic/securecore/internal/config"
	"github.com/leaflogic/securecore/internal/database"
	"github.com/leaflogic/securecore/internal/http"
	"github.com/leaflogic/securecore/internal/metrics"
	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
	securityService "github.com/leaflogic/securecore/internal/security/service"
	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
	storageRepository "github.com/leaflogic/securecore/internal/storage/repository"
	storageService "github.com/leaflogic/securecore/internal/storage/service"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Security services
	deviceInfo    securityService.DeviceInfo
	hasher        securityService.Hasher
	fingerprinter securityService.DeviceFingerprinter
	extractor     securityService.PhotoMetadataExtractor
	keyDeriver    securityService.KeyDeriver
	gate          securityService.BiometricGate

	// Storage
	cipher      storageRepository.ValueCipher
	repo        storageRepository.KVRepository
	secureStore storageService.SecureStore

	// Session and coordinator
	session     *securityDomain.Session
	coordinator securityUsecase.SecurityCoordinator

	// Metrics
	metricsProvider *metrics.Provider
	securityMetrics metrics.SecurityMetrics
	metricsServer   *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	deviceInfoInit      sync.Once
	hasherInit          sync.Once
	fingerprinterInit   sync.Once
	extractorInit       sync.Once
	keyDeriverInit      sync.Once
	gateInit            sync.Once
	cipherInit          sync.Once
	repoInit            sync.Once
	secureStoreInit     sync.Once
	sessionInit         sync.Once
	coordinatorInit     sync.Once
	metricsProviderInit sync.Once
	securityMetricsInit sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection for SQL-backed store drivers.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// MetricsProvider returns the metrics provider instance.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// SecurityMetrics returns the security metrics recorder. When metrics are
// disabled a no-op recorder is returned.
func (c *Container) SecurityMetrics() (metrics.SecurityMetrics, error) {
	c.securityMetricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			c.securityMetrics = metrics.NewNoOpSecurityMetrics()
			return
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["securityMetrics"] = fmt.Errorf(
				"failed to get metrics provider for security metrics: %w", err)
			return
		}
		securityMetrics, err := metrics.NewSecurityMetrics(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
		if err != nil {
			c.initErrors["securityMetrics"] = err
			return
		}
		c.securityMetrics = securityMetrics
	})
	if storedErr, exists := c.initErrors["securityMetrics"]; exists {
		return nil, storedErr
	}
	return c.securityMetrics, nil
}

// MetricsServer returns the metrics HTTP server instance.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = fmt.Errorf(
				"failed to get metrics provider for metrics server: %w", err)
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.MetricsHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown metrics server if initialized
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Close the secure store if initialized. The store owns the repository
	// and the cipher, so closing it closes both (including the database
	// connection for SQL-backed drivers).
	if c.secureStore != nil {
		if err := c.secureStore.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("secure store close: %w", err))
		}
	} else {
		if c.repo != nil {
			if err := c.repo.Close(); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("repository close: %w", err))
			}
		}
		if c.cipher != nil {
			if err := c.cipher.Close(); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("cipher close: %w", err))
			}
		}
	}

	// Shutdown metrics provider if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.StoreDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// authLimiter builds the authentication rate limiter, or nil when disabled.
func (c *Container) authLimiter() *rate.Limiter {
	if !c.config.AuthRateLimitEnabled {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.config.AuthRateLimitPerSec), c.config.AuthRateLimitBurst)
}
