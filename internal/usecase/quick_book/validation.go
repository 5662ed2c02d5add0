package quick_book

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Возвращает собранные ошибки полей и распарсенный слот (если ключ корректен)
func validateRequest(req *Request, now time.Time) (*domain.ValidationErrors, domain.TimeSlot) {
	v := &domain.ValidationErrors{}

	if req.ClientID <= 0 {
		v.Add("client_id", "client_id is required and must be positive")
	}

	if req.ServiceID <= 0 {
		v.Add("service_id", "service_id is required and must be positive")
	}

	if req.TrainerID != nil && *req.TrainerID <= 0 {
		v.Add("trainer_id", "trainer_id must be positive")
	}

	if req.Date.IsZero() {
		v.Add("booking_date", "booking_date is required")
	} else {
		dateOnly := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if dateOnly.Before(today) {
			v.Add("booking_date", "booking date cannot be in the past")
		}
	}

	if req.Room != nil && !domain.IsValidRoom(*req.Room) {
		v.Add("room", "unknown room")
	}

	slot := validateSlot(v, req.Slot)

	return v, slot
}

// validateSlot разбирает ключ слота и проверяет принадлежность
// стандартной сетке дня (шаг 30 минут, длительность 90 минут)
func validateSlot(v *domain.ValidationErrors, key string) domain.TimeSlot {
	if key == "" {
		v.Add("slot", "slot is required")
		return domain.TimeSlot{}
	}

	slot, err := domain.ParseSlotKey(key)
	if err != nil {
		v.Add("slot", "slot must be in HH:MM-HH:MM format")
		return domain.TimeSlot{}
	}

	grid := domain.GenerateDaySlots(domain.DayStartHour, domain.DayEndHour, domain.QuickSlotDurationMinutes)
	if !domain.ContainsSlot(grid, slot) {
		v.Add("slot", "slot is not in the bookable grid")
		return domain.TimeSlot{}
	}

	return slot
}
