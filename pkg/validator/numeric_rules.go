package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BetweenNum validates that min <= value <= max.
func BetweenNum[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// NonNegativeIntegerString validates that value is the textual form of a
// finite, whole, non-negative number. Integral decimals ("30.0") and exponent
// forms ("1e2") are accepted; fractions ("17.5") are not.
func NonNegativeIntegerString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseNonNegativeInteger(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a non-negative integer",
			TranslationKey: "validation.non_negative_integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ParseNonNegativeInteger parses value with the same acceptance as
// NonNegativeIntegerString.
func ParseNonNegativeInteger(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
