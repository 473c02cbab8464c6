package validator_test

import (
	"testing"

	"github.com/golang-sql/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clubhouse/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Required("name", "Tennis").Check())
	assert.False(t, validator.Required("name", "").Check())
	assert.False(t, validator.Required("name", "   \t").Check())
	assert.Equal(t, "name", validator.Required("name", "").Error.Field)
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxLen("name", "abc", 3).Check())
	assert.False(t, validator.MaxLen("name", "abcd", 3).Check())
	assert.True(t, validator.MaxLen("name", "Zoë", 3).Check(), "runes are counted, not bytes")
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	options := []string{"male", "female", "mixed"}
	assert.True(t, validator.OneOf("allowedGender", "mixed", options).Check())
	assert.False(t, validator.OneOf("allowedGender", "MIXED", options).Check())
	assert.False(t, validator.OneOf("allowedGender", "", options).Check())
	assert.Contains(t, validator.OneOf("allowedGender", "x", options).Error.Message, "male")
}

func TestValidUUID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"canonical", "8a6e0804-2bd0-4672-b79d-d97027f9071a", true},
		{"uppercase", "8A6E0804-2BD0-4672-B79D-D97027F9071A", true},
		{"empty", "", false},
		{"short id", "m1", false},
		{"no hyphens", "8a6e08042bd04672b79dd97027f9071a", false},
		{"braced", "{8a6e0804-2bd0-4672-b79d-d97027f9071a}", false},
		{"bad hex", "8a6e0804-2bd0-4672-b79d-d97027f9071z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidUUID("memberId", tt.value).Check())
			assert.Equal(t, tt.want, validator.IsUUID(tt.value))
		})
	}
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidDate("dob", "1990-02-28").Check())
	assert.True(t, validator.ValidDate("dob", "2024-02-29").Check())
	assert.False(t, validator.ValidDate("dob", "2023-02-29").Check())
	assert.False(t, validator.ValidDate("dob", "28/02/1990").Check())
	assert.False(t, validator.ValidDate("dob", "").Check())
}

func TestDateNotAfter(t *testing.T) {
	t.Parallel()

	today := civil.Date{Year: 2025, Month: 6, Day: 15}

	assert.True(t, validator.DateNotAfter("dob", "2025-06-15", today).Check())
	assert.True(t, validator.DateNotAfter("dob", "1990-01-01", today).Check())
	assert.False(t, validator.DateNotAfter("dob", "2025-06-16", today).Check())
	assert.True(t, validator.DateNotAfter("dob", "garbage", today).Check(), "format errors are left to ValidDate")
	assert.Equal(t, "must not be after 2025-06-15", validator.DateNotAfter("dob", "", today).Error.Message)
}

func TestPositiveDecimal(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.PositiveDecimal("price", decimal.RequireFromString("0.01")).Check())
	assert.False(t, validator.PositiveDecimal("price", decimal.Zero).Check())
	assert.False(t, validator.PositiveDecimal("price", decimal.RequireFromString("-5")).Check())
}

func TestMaxDecimalPlaces(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxDecimalPlaces("price", decimal.RequireFromString("25"), 2).Check())
	assert.True(t, validator.MaxDecimalPlaces("price", decimal.RequireFromString("25.50"), 2).Check())
	assert.True(t, validator.MaxDecimalPlaces("price", decimal.RequireFromString("25.500"), 2).Check())
	assert.False(t, validator.MaxDecimalPlaces("price", decimal.RequireFromString("25.505"), 2).Check())
}
