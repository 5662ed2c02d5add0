package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Intervals пересекаются по полуинтервальной семантике [s, e):
// s1 < e2 И s2 < e1. Граничащие интервалы (занятие заканчивается
// ровно там, где начинается следующее) конфликтом НЕ считаются
//
// Примеры:
// - 10:00-11:00 и 10:30-11:30 → конфликт
// - 10:00-11:00 и 11:00-12:00 → нет конфликта (граничат)
func Overlaps(start1, end1, start2, end2 types.TimeString) bool {
	return start1.IsBefore(end2) && start2.IsBefore(end1)
}

// FirstConflict возвращает первую запись, пересекающуюся с кандидатом,
// или nil, если конфликтов нет
// Записи проверяются в порядке переданного списка; репозиторий отдаёт
// их отсортированными по start_time, поэтому сообщение об ошибке
// детерминированно называет самую раннюю пересекающуюся запись
// excludeID исключает запись из проверки (повторная валидация при
// редактировании), 0 - не исключать ничего
func FirstConflict(start, end types.TimeString, bookings []*Booking, excludeID int64) *Booking {
	for _, booking := range bookings {
		if excludeID != 0 && booking.ID == excludeID {
			continue
		}
		if booking.Status != StatusScheduled {
			continue
		}
		if Overlaps(start, end, booking.StartTime, booking.EndTime) {
			return booking
		}
	}
	return nil
}
