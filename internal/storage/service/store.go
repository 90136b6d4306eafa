package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leaflogic/securecore/internal/metrics"
	storageDomain "github.com/leaflogic/securecore/internal/storage/domain"
	"github.com/leaflogic/securecore/internal/storage/repository"
	"github.com/leaflogic/securecore/internal/validation"
)

const metricsComponent = "store"

// secureStore implements SecureStore over a KVRepository and a ValueCipher.
// Every value is encrypted before it reaches the repository and decrypted on
// the way out, so no backend ever sees plaintext.
type secureStore struct {
	repo            repository.KVRepository
	cipher          repository.ValueCipher
	logger          *slog.Logger
	securityMetrics metrics.SecurityMetrics
}

// NewSecureStore creates a SecureStore over the given repository and cipher.
func NewSecureStore(
	repo repository.KVRepository,
	cipher repository.ValueCipher,
	logger *slog.Logger,
	securityMetrics metrics.SecurityMetrics,
) SecureStore {
	return &secureStore{
		repo:            repo,
		cipher:          cipher,
		logger:          logger,
		securityMetrics: securityMetrics,
	}
}

// StoreUserProfile stores one profile field for a user.
func (s *secureStore) StoreUserProfile(ctx context.Context, userID, field, value string) bool {
	if err := validation.ValidateUserID(userID); err != nil {
		return s.failure(ctx, "store_profile", "invalid user id", err)
	}
	if field == "" {
		return s.failure(ctx, "store_profile", "empty profile field", errors.New("field is required"))
	}
	return s.put(ctx, "store_profile", storageDomain.BuildProfileKey(userID, field), value)
}

// GetUserProfile returns all stored profile fields for a user.
func (s *secureStore) GetUserProfile(ctx context.Context, userID string) map[string]string {
	result := make(map[string]string)
	if err := validation.ValidateUserID(userID); err != nil {
		s.failure(ctx, "get_profile", "invalid user id", err)
		return result
	}

	prefix := storageDomain.ProfilePrefix(userID)
	records, err := s.repo.GetAll(ctx, prefix)
	if err != nil {
		s.failure(ctx, "get_profile", "failed to scan profile records", err)
		return result
	}

	for key, ciphertext := range records {
		field, ok := storageDomain.ProfileField(key, prefix)
		if !ok {
			continue
		}
		plaintext, err := s.cipher.Decrypt(ctx, ciphertext)
		if err != nil {
			s.logger.Warn("skipping unreadable profile record",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}
		result[field] = string(plaintext)
	}

	s.securityMetrics.RecordOperation(ctx, metricsComponent, "get_profile", "success")
	return result
}

// StoreHealthMetric stores one timestamped metric record.
func (s *secureStore) StoreHealthMetric(
	ctx context.Context,
	userID, metricType, value string,
	timestamp int64,
) bool {
	if err := validation.ValidateUserID(userID); err != nil {
		return s.failure(ctx, "store_health", "invalid user id", err)
	}
	if metricType == "" {
		return s.failure(ctx, "store_health", "empty metric type", errors.New("metric type is required"))
	}
	return s.put(ctx, "store_health", storageDomain.BuildHealthKey(userID, metricType, timestamp), value)
}

// GetHealthMetrics returns all records of one metric type for a user, or all
// of the user's metric records when metricType is empty.
func (s *secureStore) GetHealthMetrics(ctx context.Context, userID, metricType string) map[int64]string {
	result := make(map[int64]string)
	if err := validation.ValidateUserID(userID); err != nil {
		s.failure(ctx, "get_health", "invalid user id", err)
		return result
	}

	prefix := storageDomain.HealthPrefix(userID)
	if metricType != "" {
		prefix = storageDomain.HealthMetricPrefix(userID, metricType)
	}

	s.collectTimestamped(ctx, "get_health", prefix, result)
	return result
}

// StoreFoodEntry stores one timestamped food record.
func (s *secureStore) StoreFoodEntry(ctx context.Context, userID, value string, timestamp int64) bool {
	if err := validation.ValidateUserID(userID); err != nil {
		return s.failure(ctx, "store_food", "invalid user id", err)
	}
	return s.put(ctx, "store_food", storageDomain.BuildFoodKey(userID, timestamp), value)
}

// GetFoodEntries returns all food records for a user.
func (s *secureStore) GetFoodEntries(ctx context.Context, userID string) map[int64]string {
	result := make(map[int64]string)
	if err := validation.ValidateUserID(userID); err != nil {
		s.failure(ctx, "get_food", "invalid user id", err)
		return result
	}

	s.collectTimestamped(ctx, "get_food", storageDomain.FoodPrefix(userID), result)
	return result
}

// ClearUserData removes every record owned by the user.
func (s *secureStore) ClearUserData(ctx context.Context, userID string) bool {
	if err := validation.ValidateUserID(userID); err != nil {
		return s.failure(ctx, "clear_user_data", "invalid user id", err)
	}

	if err := s.repo.RemovePrefixes(ctx, storageDomain.UserPrefixes(userID)...); err != nil {
		return s.failure(ctx, "clear_user_data", "failed to remove user records", err)
	}

	s.securityMetrics.RecordOperation(ctx, metricsComponent, "clear_user_data", "success")
	return true
}

// SetSetting stores a store-level setting.
func (s *secureStore) SetSetting(ctx context.Context, name, value string) bool {
	if err := validation.ValidateSettingName(name); err != nil {
		return s.failure(ctx, "set_setting", "invalid setting name", err)
	}
	return s.put(ctx, "set_setting", storageDomain.BuildSettingKey(name), value)
}

// GetSetting returns a store-level setting, or "" when absent.
func (s *secureStore) GetSetting(ctx context.Context, name string) string {
	if err := validation.ValidateSettingName(name); err != nil {
		s.failure(ctx, "get_setting", "invalid setting name", err)
		return ""
	}

	ciphertext, err := s.repo.Get(ctx, storageDomain.BuildSettingKey(name))
	if err != nil {
		if !errors.Is(err, storageDomain.ErrRecordNotFound) {
			s.failure(ctx, "get_setting", "failed to get setting", err)
		}
		return ""
	}

	plaintext, err := s.cipher.Decrypt(ctx, ciphertext)
	if err != nil {
		s.failure(ctx, "get_setting", "failed to decrypt setting", err)
		return ""
	}

	s.securityMetrics.RecordOperation(ctx, metricsComponent, "get_setting", "success")
	return string(plaintext)
}

// Close closes the repository and the cipher.
func (s *secureStore) Close() error {
	repoErr := s.repo.Close()
	cipherErr := s.cipher.Close()
	if repoErr != nil {
		return repoErr
	}
	return cipherErr
}

// put encrypts value and stores it under key.
func (s *secureStore) put(ctx context.Context, operation, key, value string) bool {
	ciphertext, err := s.cipher.Encrypt(ctx, []byte(value))
	if err != nil {
		return s.failure(ctx, operation, "failed to encrypt value", err)
	}
	if err := s.repo.Put(ctx, key, ciphertext); err != nil {
		return s.failure(ctx, operation, "failed to store record", err)
	}

	s.securityMetrics.RecordOperation(ctx, metricsComponent, operation, "success")
	return true
}

// collectTimestamped scans a prefix and fills result with timestamp-keyed
// plaintext values. Records with malformed timestamps or undecryptable
// values are skipped.
func (s *secureStore) collectTimestamped(
	ctx context.Context,
	operation, prefix string,
	result map[int64]string,
) {
	records, err := s.repo.GetAll(ctx, prefix)
	if err != nil {
		s.failure(ctx, operation, "failed to scan records", err)
		return
	}

	for key, ciphertext := range records {
		timestamp, ok := storageDomain.ParseTrailingTimestamp(key)
		if !ok {
			s.logger.Warn("skipping record with malformed timestamp", slog.String("key", key))
			continue
		}
		plaintext, err := s.cipher.Decrypt(ctx, ciphertext)
		if err != nil {
			s.logger.Warn("skipping unreadable record",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}
		result[timestamp] = string(plaintext)
	}

	s.securityMetrics.RecordOperation(ctx, metricsComponent, operation, "success")
}

// failure logs the problem, records the metric and reports false.
func (s *secureStore) failure(ctx context.Context, operation, message string, err error) bool {
	s.logger.Warn(message,
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	s.securityMetrics.RecordOperation(ctx, metricsComponent, operation, "error")
	return false
}
