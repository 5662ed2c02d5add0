package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Ошибки не прерывают проверку: собираются все независимые нарушения,
// зависимые проверки (длительность, рабочие часы) пропускаются,
// пока не валидны их предпосылки
func validateRequest(req *Request, now time.Time) *domain.ValidationErrors {
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

	validateDate(v, req.Date, now)
	validateInterval(v, req)

	if !domain.IsValidRoom(req.Room) {
		v.Add("room", "unknown room")
	}

	return v
}

// conflictCheckable возвращает true, когда есть все предпосылки для
// проверки пересечений: дата, корректная пара времён и известный зал.
// Прочие ошибки полей проверку не отменяют
func conflictCheckable(req *Request) bool {
	return !req.Date.IsZero() &&
		req.StartTime.Validate() == nil &&
		req.EndTime.Validate() == nil &&
		req.StartTime.IsBefore(req.EndTime) &&
		domain.IsValidRoom(req.Room)
}

// validateDate проверяет дату занятия
func validateDate(v *domain.ValidationErrors, date time.Time, now time.Time) {
	if date.IsZero() {
		v.Add("booking_date", "booking_date is required")
		return
	}

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(today) {
		v.Add("booking_date", "booking date cannot be in the past")
	}
}

// validateInterval проверяет время начала и окончания занятия
func validateInterval(v *domain.ValidationErrors, req *Request) {
	startOK := true
	endOK := true

	if req.StartTime.IsZero() {
		v.Add("start_time", "start_time is required")
		startOK = false
	} else if err := req.StartTime.Validate(); err != nil {
		v.Add("start_time", "start_time must be in HH:MM format")
		startOK = false
	}

	if req.EndTime.IsZero() {
		v.Add("end_time", "end_time is required")
		endOK = false
	} else if err := req.EndTime.Validate(); err != nil {
		v.Add("end_time", "end_time must be in HH:MM format")
		endOK = false
	}

	// Дальнейшие проверки имеют смысл только для корректной пары времён
	if !startOK || !endOK {
		return
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		v.Add("end_time", "end_time must be after start_time")
		return
	}

	duration, err := req.EndTime.Sub(req.StartTime)
	if err != nil {
		v.Add("end_time", "end_time must be after start_time")
		return
	}

	if duration < domain.MinDurationMinutes || duration > domain.MaxDurationMinutes {
		v.Add("end_time", fmt.Sprintf("duration must be between %d and %d minutes",
			domain.MinDurationMinutes, domain.MaxDurationMinutes))
	}

	if req.StartTime.Hour() < domain.DayStartHour || req.StartTime.Hour() > domain.DayEndHour {
		v.Add("start_time", fmt.Sprintf("start_time must be between %02d:00 and %02d:00",
			domain.DayStartHour, domain.DayEndHour))
	}

	endMinutes, err := req.EndTime.MinutesOfDay()
	if err == nil && endMinutes > domain.LatestEndHour*60 {
		v.Add("end_time", fmt.Sprintf("end_time must not be later than %02d:00", domain.LatestEndHour))
	}
}
