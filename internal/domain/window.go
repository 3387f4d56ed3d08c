package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Window is a half-open time interval [Start, End) with minute precision.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds the window [start, start+duration). Start is truncated to the minute.
func NewWindow(start time.Time, durationMinutes int) (Window, error) {
	if durationMinutes <= 0 {
		return Window{}, Errorf(ErrValidation, "duration must be positive, got %d", durationMinutes)
	}
	start = start.Truncate(time.Minute)
	return Window{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}, nil
}

// Overlaps reports whether the windows intersect. Touching windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// StartTime returns the time of day of Start.
func (w Window) StartTime() types.TimeString {
	return types.NewTimeString(w.Start)
}

// EndTime returns the time of day of End.
func (w Window) EndTime() types.TimeString {
	return types.NewTimeString(w.End)
}

// SameDay reports whether Start and End fall on the same calendar date.
// A window ending exactly at the following midnight does not.
func (w Window) SameDay() bool {
	return SameDate(w.Start, w.End)
}

// DayBounds returns [00:00, next 00:00) of the date of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// SameDate reports whether a and b share the calendar date.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
