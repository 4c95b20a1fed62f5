package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// zipcodeRegex matches Korean postal codes
	// Formats: 12345 (도로명 우편번호) or 123-456 (구 우편번호)
	zipcodeRegex = regexp.MustCompile(`^([0-9]{5}|[0-9]{3}-[0-9]{3})$`)
)

// ValidateZipcode validates a Korean postal code
func ValidateZipcode(fl validator.FieldLevel) bool {
	return zipcodeRegex.MatchString(fl.Field().String())
}
