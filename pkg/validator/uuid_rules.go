package validator

import (
	"github.com/google/uuid"
)

// ValidUUID accepts only the canonical 36-character hyphenated form.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsUUID(value)
		},
		Error: ValidationError{Field: field, Message: "must be a valid UUID"},
	}
}

// IsUUID reports whether value is a canonical UUID string.
// The length and hyphen checks reject braced and URN forms that uuid.Parse allows.
func IsUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
