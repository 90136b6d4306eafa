// Package service implements the encrypted store conventions for profile
// fields, health metrics, food entries and store-level settings.
package service

import (
	"context"
)

// SecureStore persists encrypted records under the application's key
// conventions. Write and clear operations report success as a boolean and
// read operations return empty results on failure: storage problems are
// logged, never surfaced as errors, so callers degrade gracefully.
type SecureStore interface {
	// StoreUserProfile stores one profile field for a user.
	StoreUserProfile(ctx context.Context, userID, field, value string) bool

	// GetUserProfile returns all stored profile fields for a user, keyed by
	// field name. Unreadable records are skipped.
	GetUserProfile(ctx context.Context, userID string) map[string]string

	// StoreHealthMetric stores one timestamped metric record. Records of the
	// same user, type and timestamp overwrite each other.
	StoreHealthMetric(ctx context.Context, userID, metricType, value string, timestamp int64) bool

	// GetHealthMetrics returns all records of one metric type for a user,
	// keyed by timestamp, or every metric record of the user when metricType
	// is empty. Records with malformed timestamps are skipped.
	GetHealthMetrics(ctx context.Context, userID, metricType string) map[int64]string

	// StoreFoodEntry stores one timestamped food record.
	StoreFoodEntry(ctx context.Context, userID, value string, timestamp int64) bool

	// GetFoodEntries returns all food records for a user, keyed by timestamp.
	GetFoodEntries(ctx context.Context, userID string) map[int64]string

	// ClearUserData removes every profile, health and food record of a user.
	// Store-level settings are not touched.
	ClearUserData(ctx context.Context, userID string) bool

	// SetSetting stores a store-level setting.
	SetSetting(ctx context.Context, name, value string) bool

	// GetSetting returns a store-level setting, or "" when absent or unreadable.
	GetSetting(ctx context.Context, name string) string

	// Close flushes and releases the underlying repository and cipher.
	Close() error
}
