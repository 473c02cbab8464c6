package validator

import (
	"github.com/golang-sql/civil"
)

// ValidDate accepts calendar dates in YYYY-MM-DD form.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, err := civil.ParseDate(value)
			return err == nil && d.IsValid()
		},
		Error: ValidationError{Field: field, Message: "must be a valid date (YYYY-MM-DD)"},
	}
}

// DateNotAfter fails when value is later than limit. Unparseable values
// pass so that ValidDate reports them once.
func DateNotAfter(field, value string, limit civil.Date) Rule {
	return Rule{
		Check: func() bool {
			d, err := civil.ParseDate(value)
			if err != nil {
				return true
			}
			return !d.After(limit)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be after " + limit.String(),
		},
	}
}
