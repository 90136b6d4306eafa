// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/leaflogic/securecore/internal/errors"
)

var (
	// identifierRegex matches identifiers safe for composite storage keys.
	identifierRegex = regexp.MustCompile(`^[a-zA-Z0-9.\-]+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Identifier validates values used as user ids and setting names inside
// composite storage keys. The underscore is the key delimiter, so it must
// never appear in an identifier; otherwise two distinct logical records
// could collide on the same physical key.
type Identifier struct{}

// Validate checks the value is a non-empty delimiter-free identifier.
func (i Identifier) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_identifier", "identifier must be a string")
	}

	if s == "" {
		return validation.NewError("validation_identifier_empty", "identifier must not be empty")
	}

	if strings.Contains(s, "_") {
		return validation.NewError(
			"validation_identifier_delimiter",
			"identifier must not contain the underscore delimiter",
		)
	}

	if !identifierRegex.MatchString(s) {
		return validation.NewError(
			"validation_identifier_charset",
			"identifier must contain only letters, digits, dots and dashes",
		)
	}

	return nil
}

// ValidateUserID validates a user id for use in storage key construction.
func ValidateUserID(userID string) error {
	return WrapValidationError(validation.Validate(userID, validation.Required, Identifier{}))
}

// ValidateSettingName validates a security setting name.
func ValidateSettingName(name string) error {
	return WrapValidationError(validation.Validate(name, validation.Required, Identifier{}))
}
