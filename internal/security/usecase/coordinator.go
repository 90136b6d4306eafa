package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/leaflogic/securecore/internal/metrics"
	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
	securityService "github.com/leaflogic/securecore/internal/security/service"
	storageService "github.com/leaflogic/securecore/internal/storage/service"
)

const metricsComponent = "coordinator"

// Names of the persisted store-level settings written by Initialize.
const (
	settingInitialized   = "initialized"
	settingPhotoEnhanced = "photo-enhanced"
)

// coordinator implements SecurityCoordinator. It owns the session and is the
// only component that reads or writes it.
type coordinator struct {
	fingerprinter   securityService.DeviceFingerprinter
	extractor       securityService.PhotoMetadataExtractor
	keyDeriver      securityService.KeyDeriver
	gate            securityService.BiometricGate
	store           storageService.SecureStore
	session         *securityDomain.Session
	authLimiter     *rate.Limiter
	logger          *slog.Logger
	securityMetrics metrics.SecurityMetrics
}

// Config carries the coordinator's dependencies.
type Config struct {
	Fingerprinter   securityService.DeviceFingerprinter
	Extractor       securityService.PhotoMetadataExtractor
	KeyDeriver      securityService.KeyDeriver
	Gate            securityService.BiometricGate
	Store           storageService.SecureStore
	Session         *securityDomain.Session
	AuthLimiter     *rate.Limiter // nil disables authentication rate limiting
	Logger          *slog.Logger
	SecurityMetrics metrics.SecurityMetrics
}

// NewSecurityCoordinator creates a SecurityCoordinator from its dependencies.
func NewSecurityCoordinator(cfg Config) SecurityCoordinator {
	return &coordinator{
		fingerprinter:   cfg.Fingerprinter,
		extractor:       cfg.Extractor,
		keyDeriver:      cfg.KeyDeriver,
		gate:            cfg.Gate,
		store:           cfg.Store,
		session:         cfg.Session,
		authLimiter:     cfg.AuthLimiter,
		logger:          cfg.Logger,
		securityMetrics: cfg.SecurityMetrics,
	}
}

// Initialize derives, validates and installs the enhanced key.
func (c *coordinator) Initialize(
	ctx context.Context,
	photo io.Reader,
	userSalt string,
) securityDomain.InitResult {
	start := time.Now()

	fingerprint := c.fingerprinter.Fingerprint(ctx)

	// Photo metadata is best-effort: a photo that cannot be parsed still
	// counts as photo-enhanced, it just contributes default values.
	var metadata *securityDomain.PhotoMetadata
	if photo != nil {
		extracted := c.extractor.Extract(photo)
		metadata = &extracted
	}

	key := c.keyDeriver.DeriveEnhancedKey(fingerprint, metadata, userSalt)
	if !c.keyDeriver.ValidateStrength(key) {
		c.logger.Warn("derived key failed strength validation")
		c.recordOutcome(ctx, "initialize", "weak_key", start)
		return securityDomain.InitResult{
			Status:  securityDomain.InitWeakKey,
			Message: securityDomain.ErrWeakKey.Error(),
		}
	}

	c.session.SetKey(key)

	c.store.SetSetting(ctx, settingInitialized, "true")
	if metadata != nil {
		c.store.SetSetting(ctx, settingPhotoEnhanced, "true")
	} else {
		c.store.SetSetting(ctx, settingPhotoEnhanced, "false")
	}

	c.logger.Info("security initialized", slog.Bool("photo_enhanced", metadata != nil))
	c.recordOutcome(ctx, "initialize", "success", start)
	return securityDomain.InitResult{Status: securityDomain.InitSuccess, Key: key}
}

// Authenticate gates the session via biometrics or the key-presence fallback.
func (c *coordinator) Authenticate(
	ctx context.Context,
	requireBiometric bool,
	cfg securityDomain.PromptConfig,
) securityDomain.AuthResult {
	start := time.Now()

	if c.authLimiter != nil && !c.authLimiter.Allow() {
		c.logger.Warn("authentication attempt rate limited")
		c.recordOutcome(ctx, "authenticate", "rate_limited", start)
		return securityDomain.AuthResult{
			Status:  securityDomain.AuthError,
			Message: securityDomain.ErrTooManyAttempts.Error(),
		}
	}

	if requireBiometric && c.gate.Available(ctx) {
		result, err := c.gate.Authenticate(ctx, cfg)
		if err != nil {
			// Cancellation: the prompt was dismissed without an outcome.
			c.recordOutcome(ctx, "authenticate", "error", start)
			return securityDomain.AuthResult{
				Status:  securityDomain.AuthError,
				Message: err.Error(),
			}
		}
		if result.Status == securityDomain.AuthSuccess {
			c.session.MarkAuthenticated()
		}
		c.recordOutcome(ctx, "authenticate", string(result.Status), start)
		return result
	}

	// Fallback for devices without biometric hardware: a derived key alone
	// authenticates the session. Lower assurance than the biometric path.
	if c.session.HasKey() {
		c.session.MarkAuthenticated()
		c.recordOutcome(ctx, "authenticate", "success", start)
		return securityDomain.AuthResult{Status: securityDomain.AuthSuccess}
	}

	c.recordOutcome(ctx, "authenticate", "error", start)
	return securityDomain.AuthResult{
		Status:  securityDomain.AuthError,
		Message: securityDomain.ErrNotInitialized.Error(),
	}
}

// StoreSecureData persists one record, routed by data type.
func (c *coordinator) StoreSecureData(
	ctx context.Context,
	userID string,
	dataType securityDomain.DataType,
	data string,
	timestamp int64,
) bool {
	if !c.session.CanAccessData() {
		c.denied(ctx, "store_data")
		return false
	}

	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	switch dataType {
	case securityDomain.HealthMetrics:
		storageKey := c.keyDeriver.DeriveStorageKey(c.session.Key(), dataType, userID)
		return c.store.StoreHealthMetric(ctx, userID, storageKey, data, timestamp)
	case securityDomain.FoodEntries:
		return c.store.StoreFoodEntry(ctx, userID, data, timestamp)
	case securityDomain.UserProfile:
		return c.store.StoreUserProfile(ctx, userID, "data", data)
	default:
		// Generic bucket: time-series records keyed by the type name.
		return c.store.StoreHealthMetric(ctx, userID, dataType.String(), data, timestamp)
	}
}

// GetSecureData retrieves all records of one data type for a user.
func (c *coordinator) GetSecureData(
	ctx context.Context,
	userID string,
	dataType securityDomain.DataType,
) securityDomain.RecordSet {
	if !c.session.CanAccessData() {
		c.denied(ctx, "get_data")
		return securityDomain.RecordSet{}
	}

	switch dataType {
	case securityDomain.HealthMetrics:
		storageKey := c.keyDeriver.DeriveStorageKey(c.session.Key(), dataType, userID)
		return securityDomain.RecordSet{
			ByTimestamp: c.store.GetHealthMetrics(ctx, userID, storageKey),
		}
	case securityDomain.FoodEntries:
		return securityDomain.RecordSet{
			ByTimestamp: c.store.GetFoodEntries(ctx, userID),
		}
	case securityDomain.UserProfile:
		// Profile records carry no meaningful timestamp, so they come back
		// keyed by field name.
		return securityDomain.RecordSet{
			ByField: c.store.GetUserProfile(ctx, userID),
		}
	default:
		return securityDomain.RecordSet{
			ByTimestamp: c.store.GetHealthMetrics(ctx, userID, dataType.String()),
		}
	}
}

// GetSecurityStatus reports the current security snapshot.
func (c *coordinator) GetSecurityStatus(ctx context.Context) securityDomain.SecurityStatus {
	key := c.session.Key()
	return securityDomain.SecurityStatus{
		IsInitialized:    c.store.GetSetting(ctx, settingInitialized) == "true",
		IsPhotoEnhanced:  c.store.GetSetting(ctx, settingPhotoEnhanced) == "true",
		HasBiometricAuth: c.gate.Available(ctx),
		IsAuthenticated:  c.session.Authenticated(),
		HasValidKey:      key != "" && c.keyDeriver.ValidateStrength(key),
	}
}

// ClearSecurityData wipes a user's records and resets the session.
func (c *coordinator) ClearSecurityData(ctx context.Context, userID string) bool {
	// Session reset is unconditional: a partially failed wipe must not leave
	// an authenticated session pointing at missing data.
	defer c.session.Reset()

	ok := c.store.ClearUserData(ctx, userID)
	ok = c.store.SetSetting(ctx, settingInitialized, "false") && ok
	ok = c.store.SetSetting(ctx, settingPhotoEnhanced, "false") && ok

	if ok {
		c.securityMetrics.RecordOperation(ctx, metricsComponent, "clear_data", "success")
	} else {
		c.securityMetrics.RecordOperation(ctx, metricsComponent, "clear_data", "error")
	}
	return ok
}

// UpdateEncryptionKey re-runs Initialize with a new photo.
func (c *coordinator) UpdateEncryptionKey(ctx context.Context, photo io.Reader, userSalt string) bool {
	result := c.Initialize(ctx, photo, userSalt)
	return result.Status == securityDomain.InitSuccess
}

// DeviceFingerprint returns the current device fingerprint.
func (c *coordinator) DeviceFingerprint(ctx context.Context) string {
	return c.fingerprinter.Fingerprint(ctx)
}

// denied logs and records a data access rejected by the session gate.
func (c *coordinator) denied(ctx context.Context, operation string) {
	c.logger.Warn("data access denied",
		slog.String("operation", operation),
		slog.String("error", securityDomain.ErrNotAuthenticated.Error()),
	)
	c.securityMetrics.RecordOperation(ctx, metricsComponent, operation, "denied")
}

// recordOutcome records both the operation counter and its duration.
func (c *coordinator) recordOutcome(ctx context.Context, operation, status string, start time.Time) {
	c.securityMetrics.RecordOperation(ctx, metricsComponent, operation, status)
	c.securityMetrics.RecordDuration(ctx, metricsComponent, operation, time.Since(start), status)
}
