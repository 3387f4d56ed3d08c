package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Provider is a staff member (barber) who performs services within daily working hours.
type Provider struct {
	ID        int64
	Name      string
	Phone     *string
	Email     string
	WorkStart types.TimeString // daily opening, inclusive
	WorkEnd   types.TimeString // daily closing, exclusive
	Active    bool

	// Services the provider performs. Informational only.
	ServiceIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWorkingHours reports whether both bounds are configured.
func (p *Provider) HasWorkingHours() bool {
	return !p.WorkStart.IsZero() && !p.WorkEnd.IsZero()
}

// ValidateHours checks the WorkStart < WorkEnd invariant.
func (p *Provider) ValidateHours() error {
	return ValidateWorkingHours(p.WorkStart, p.WorkEnd)
}

// ValidateWithinWorkingHours fails with ErrOutOfHours when the window does not fit
// the provider's daily hours. Only the time of day is compared. A window may not
// start exactly at closing time, and may not cross midnight.
func (p *Provider) ValidateWithinWorkingHours(w Window) error {
	if !p.HasWorkingHours() {
		return Errorf(ErrValidation, "provider %d has no working hours configured", p.ID)
	}

	start := w.StartTime()
	end := w.EndTime()

	if !w.SameDay() ||
		start.IsBefore(p.WorkStart) ||
		end.IsAfter(p.WorkEnd) ||
		start.Equal(p.WorkEnd) {
		return Errorf(ErrOutOfHours, "%s-%s is outside working hours %s-%s", start, end, p.WorkStart, p.WorkEnd)
	}

	return nil
}

// ValidateWorkingHours checks that both bounds are valid HH:MM values and start < end.
func ValidateWorkingHours(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return Errorf(ErrValidation, "workStart: %v", err)
	}
	if err := end.Validate(); err != nil {
		return Errorf(ErrValidation, "workEnd: %v", err)
	}
	if !start.IsBefore(end) {
		return Errorf(ErrValidation, "workStart (%s) must be before workEnd (%s)", start, end)
	}
	return nil
}
