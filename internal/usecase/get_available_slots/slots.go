package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// calculateAvailability размечает слоты сетки дня по занятости
// Слот недоступен, если:
//   - он пересекается с запланированным занятием зала, либо
//   - его начало уже наступило (для сегодняшней и прошедших дат)
func calculateAvailability(
	grid []domain.TimeSlot,
	date time.Time,
	bookings []*domain.Booking,
	now time.Time,
) []Slot {
	slots := make([]Slot, 0, len(grid))

	for _, candidate := range grid {
		available := true

		if domain.FirstConflict(candidate.Start, candidate.End, bookings, 0) != nil {
			available = false
		}

		if available {
			start, err := candidate.Start.At(date)
			if err != nil || !start.After(now) {
				available = false
			}
		}

		slots = append(slots, Slot{
			Slot:      candidate.Key(),
			StartTime: candidate.Start,
			EndTime:   candidate.End,
			Available: available,
		})
	}

	return slots
}
