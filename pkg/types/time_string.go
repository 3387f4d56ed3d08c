package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a value is not a valid HH:MM time of day
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow is returned when arithmetic leaves the 00:00-23:59 range
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString is a time of day with minute precision, formatted as HH:MM.
// It is not bound to a date.
type TimeString string

// NewTimeString extracts the time of day from t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and normalizes an HH:MM (or HH:MM:SS) value.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return NewTimeString(t), nil
}

// MustTimeString is like NewTimeStringFromString but panics on error.
// Intended for constants and tests.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// FromMinutes builds a TimeString from minutes since midnight.
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the HH:MM format.
func (t TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns minutes since midnight. Invalid values return -1.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes shifts the time of day. Results outside the same day are an error.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + minutes)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Equal reports whether both values denote the same minute of the day.
func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

// Within reports whether t lies in the half-open range [start, end).
func (t TimeString) Within(start, end TimeString) bool {
	return !t.IsBefore(start) && t.IsBefore(end)
}

// On combines the time of day with the calendar date of day.
func (t TimeString) On(day time.Time) time.Time {
	m := t.Minutes()
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, day.Location())
}

// Scan implements sql.Scanner. PostgreSQL TIME columns arrive as "HH:MM:SS".
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func parseClock(s string) (time.Time, error) {
	for _, layout := range []string{timeLayout, "15:04:05", "15:04:05.999999"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}
