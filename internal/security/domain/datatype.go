package domain

// DataType identifies a logical category of secure records. The coordinator
// routes each type to its storage convention; types without a dedicated
// convention fall back to the generic time-series bucket keyed by the type name.
type DataType string

const (
	// HealthMetrics are time-series measurements (weight, steps, sleep)
	// stored under a per-type derived storage key.
	HealthMetrics DataType = "HEALTH_METRICS"

	// FoodEntries are time-series food log records.
	FoodEntries DataType = "FOOD_ENTRIES"

	// UserProfile is the field-keyed profile record set.
	UserProfile DataType = "USER_PROFILE"

	// ChatMessages is a generic bucket for persisted chat history.
	ChatMessages DataType = "CHAT_MESSAGES"

	// GoalsAndPreferences is a generic bucket for goals and preference records.
	GoalsAndPreferences DataType = "GOALS_AND_PREFERENCES"
)

// String returns the data type name used in storage key construction.
func (d DataType) String() string {
	return string(d)
}
