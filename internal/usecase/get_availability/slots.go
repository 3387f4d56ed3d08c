package get_availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// occupiedSlots раскладывает каждую активную запись на шаги по SlotMinutes от её начала.
// Шаг попадает в результат, если он лежит на запрошенной дате и внутри [workStart, workEnd).
func occupiedSlots(date time.Time, provider *domain.Provider, appointments []*domain.Appointment) []types.TimeString {
	step := time.Duration(domain.SlotMinutes) * time.Minute
	seen := make(map[int]types.TimeString)

	for _, a := range appointments {
		if !a.IsScheduled() {
			continue
		}

		end := a.End()
		for t := a.Start; t.Before(end); t = t.Add(step) {
			if !domain.SameDate(t, date) {
				continue
			}
			slot := types.NewTimeString(t)
			if slot.Within(provider.WorkStart, provider.WorkEnd) {
				seen[slot.Minutes()] = slot
			}
		}
	}

	result := make([]types.TimeString, 0, len(seen))
	for _, slot := range seen {
		result = append(result, slot)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].IsBefore(result[j])
	})

	return result
}
