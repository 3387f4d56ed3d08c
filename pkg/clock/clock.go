// Package clock provides wall-clock sources for the scheduling code.
//
// Scheduling works on local wall-clock time without zone conversion. Wall-clock
// values are carried as time.Time in UTC: the fields (date, hour, minute) are the
// local reading, the location is always UTC. Parsed request values and
// PostgreSQL "timestamp without time zone" columns follow the same convention.
package clock

import "time"

// Real reads the current wall clock of a fixed location.
type Real struct {
	loc *time.Location
}

// New returns a Real clock. A nil location means time.Local.
func New(loc *time.Location) *Real {
	if loc == nil {
		loc = time.Local
	}
	return &Real{loc: loc}
}

// Now returns the current wall-clock reading to the second. Seconds are kept
// so that a minute which has already begun counts as past.
func (c *Real) Now() time.Time {
	t := time.Now().In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Location returns the clock location.
func (c *Real) Location() *time.Location {
	return c.loc
}

// Fixed always reports the same instant. Used in tests.
type Fixed struct {
	T time.Time
}

func (c Fixed) Now() time.Time {
	return c.T
}

// WallClock drops the zone of t keeping its reading, truncated to the minute.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// LoadLocation resolves an IANA name; an empty name is time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
