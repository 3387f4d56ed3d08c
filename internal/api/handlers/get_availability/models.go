package get_availability

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProviderID  int64    `json:"providerId"`
	Date        string   `json:"date"`      // "2025-10-15"
	WorkStart   string   `json:"workStart"` // "08:00"
	WorkEnd     string   `json:"workEnd"`   // "18:00"
	SlotMinutes int      `json:"slotMinutes"`
	Occupied    []string `json:"occupied"` // ["09:00", "09:30"]
}

// FromDomain конвертирует доменную занятость в HTTP response
func FromDomain(a *domain.Availability) *AvailabilityResponse {
	occupied := make([]string, 0, len(a.OccupiedSlots))
	for _, slot := range a.OccupiedSlots {
		occupied = append(occupied, slot.String())
	}

	return &AvailabilityResponse{
		ProviderID:  a.ProviderID,
		Date:        a.Date.Format(domain.DateFormat),
		WorkStart:   a.WorkStart.String(),
		WorkEnd:     a.WorkEnd.String(),
		SlotMinutes: a.SlotMinutes,
		Occupied:    occupied,
	}
}
