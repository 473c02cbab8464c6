package validator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func PositiveDecimal(field string, value decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.IsPositive()
		},
		Error: ValidationError{Field: field, Message: "must be greater than zero"},
	}
}

// MaxDecimalPlaces fails when value carries more fractional digits than places.
// Trailing zeros do not count: 12.50 has two places, 12.5 has one.
func MaxDecimalPlaces(field string, value decimal.Decimal, places int32) Rule {
	return Rule{
		Check: func() bool {
			return value.Equal(value.Truncate(places))
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d decimal places", places),
		},
	}
}
