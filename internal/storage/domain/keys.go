// Package domain defines the record key conventions and errors for the
// encrypted key-value store.
package domain

import (
	"strconv"
	"strings"
)

// Record key category prefixes. Every stored record lives under exactly one
// of these namespaces; user ids, metric types and setting names are joined
// with "_", which is why identifiers themselves must not contain it.
const (
	profileCategory = "profile"
	healthCategory  = "health"
	foodCategory    = "food"
	settingCategory = "security"

	keySeparator = "_"
)

// BuildProfileKey returns the record key for a user profile field:
// profile_{userID}_{field}.
func BuildProfileKey(userID, field string) string {
	return strings.Join([]string{profileCategory, userID, field}, keySeparator)
}

// BuildHealthKey returns the record key for a timestamped health metric:
// health_{userID}_{metricType}_{timestamp}.
func BuildHealthKey(userID, metricType string, timestamp int64) string {
	return strings.Join(
		[]string{healthCategory, userID, metricType, strconv.FormatInt(timestamp, 10)},
		keySeparator,
	)
}

// BuildFoodKey returns the record key for a timestamped food entry:
// food_{userID}_{timestamp}.
func BuildFoodKey(userID string, timestamp int64) string {
	return strings.Join(
		[]string{foodCategory, userID, strconv.FormatInt(timestamp, 10)},
		keySeparator,
	)
}

// BuildSettingKey returns the record key for a store-level setting:
// security_{name}.
func BuildSettingKey(name string) string {
	return settingCategory + keySeparator + name
}

// ProfilePrefix returns the key prefix covering all profile fields of a user.
func ProfilePrefix(userID string) string {
	return profileCategory + keySeparator + userID + keySeparator
}

// HealthMetricPrefix returns the key prefix covering all records of one
// metric type for a user.
func HealthMetricPrefix(userID, metricType string) string {
	return healthCategory + keySeparator + userID + keySeparator + metricType + keySeparator
}

// HealthPrefix returns the key prefix covering all health metrics of a user,
// regardless of metric type.
func HealthPrefix(userID string) string {
	return healthCategory + keySeparator + userID + keySeparator
}

// FoodPrefix returns the key prefix covering all food entries of a user.
func FoodPrefix(userID string) string {
	return foodCategory + keySeparator + userID + keySeparator
}

// UserPrefixes returns every key prefix owned by a user. Store-level settings
// are deliberately excluded: they are not user data.
func UserPrefixes(userID string) []string {
	return []string{
		ProfilePrefix(userID),
		HealthPrefix(userID),
		FoodPrefix(userID),
	}
}

// ParseTrailingTimestamp extracts the timestamp from the final "_"-separated
// segment of a record key. Metric types may themselves contain "_", so only
// the last segment is considered. Returns false for keys whose final segment
// is not a valid integer; callers skip such records instead of failing the scan.
func ParseTrailingTimestamp(key string) (int64, bool) {
	idx := strings.LastIndex(key, keySeparator)
	if idx < 0 || idx == len(key)-1 {
		return 0, false
	}
	timestamp, err := strconv.ParseInt(key[idx+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return timestamp, true
}

// ProfileField extracts the field name from a profile record key given the
// user's profile prefix. Returns false when the key does not carry a field.
func ProfileField(key, prefix string) (string, bool) {
	field := strings.TrimPrefix(key, prefix)
	if field == "" || field == key {
		return "", false
	}
	return field, true
}
