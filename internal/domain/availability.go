package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Availability is the occupied-slot view of one provider on one date
type Availability struct {
	ProviderID    int64
	Date          time.Time
	WorkStart     types.TimeString
	WorkEnd       types.TimeString
	SlotMinutes   int
	OccupiedSlots []types.TimeString // ascending, without duplicates
}

// IsOccupied reports whether the slot starting at t is taken
func (a *Availability) IsOccupied(t types.TimeString) bool {
	for _, slot := range a.OccupiedSlots {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
