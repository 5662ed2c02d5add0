package get_available_slots

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Прошедшая дата ошибкой не считается: её слоты просто недоступны
func validateRequest(req *Request) *domain.ValidationErrors {
	v := &domain.ValidationErrors{}

	if !domain.IsValidRoom(req.Room) {
		v.Add("room", "unknown room")
	}

	if req.Date.IsZero() {
		v.Add("date", "date is required")
	}

	return v
}
