package get_available_slots

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

// SlotResponse слот дня с признаком доступности
type SlotResponse struct {
	Slot      string `json:"slot"`      // "10:00-11:30"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Room  string         `json:"room"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Slot:      s.Slot,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
		})
	}

	return &SlotsResponse{
		Room:  resp.Room,
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
