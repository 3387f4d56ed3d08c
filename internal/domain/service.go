package domain

import (
	"strings"
	"time"
)

// Service is a catalog entry a customer can book.
// DurationMinutes is the sole determinant of an appointment's end.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the catalog invariants.
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(ErrValidation, "service name is required")
	}
	if TooLong(s.Name, MaxNameLength) {
		return Errorf(ErrValidation, "service name must be at most %d characters", MaxNameLength)
	}
	if err := ValidateAmount("price", s.Price); err != nil {
		return err
	}
	if s.DurationMinutes <= 0 {
		return Errorf(ErrValidation, "durationMinutes must be greater than zero")
	}
	return nil
}

// SameName compares names case-insensitively, ignoring surrounding spaces.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
