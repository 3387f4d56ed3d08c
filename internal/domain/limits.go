package domain

import (
	"math"
	"unicode/utf8"
)

// Money columns are NUMERIC(10,2).
const (
	MinAmountCents = 1
	MaxAmountCents = 99_999_999_99
)

// TooLong reports whether s has more than max characters.
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// ValidateAmount checks that v is positive and still fits the money columns
// once rounded to cents.
func ValidateAmount(field string, v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return Errorf(ErrValidation, "%s must be greater than zero", field)
	}
	cents := math.Round(v * 100)
	if cents < MinAmountCents {
		return Errorf(ErrValidation, "%s must be at least 0.01", field)
	}
	if math.IsInf(v, 1) || cents > MaxAmountCents {
		return Errorf(ErrValidation, "%s must be at most 99999999.99", field)
	}
	return nil
}
