package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ErrInvalidSlotKey возвращается при некорректном ключе слота
var ErrInvalidSlotKey = errors.New("domain: invalid slot key, expected HH:MM-HH:MM")

// TimeSlot кандидат на занятие: пара (начало, конец) внутри рабочего дня
// Внутри сервиса слот всегда структурное значение; строковый ключ
// "HH:MM-HH:MM" существует только на границе API
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// Key возвращает строковый ключ слота для обмена с клиентом
func (s TimeSlot) Key() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// ParseSlotKey разбирает ключ "HH:MM-HH:MM" в структурный слот
func ParseSlotKey(key string) (TimeSlot, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return TimeSlot{}, ErrInvalidSlotKey
	}

	start, err := types.NewTimeStringFromString(parts[0])
	if err != nil {
		return TimeSlot{}, ErrInvalidSlotKey
	}

	end, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return TimeSlot{}, ErrInvalidSlotKey
	}

	if !start.IsBefore(end) {
		return TimeSlot{}, ErrInvalidSlotKey
	}

	return TimeSlot{Start: start, End: end}, nil
}

// GenerateDaySlots генерирует упорядоченный список кандидатов слотов рабочего дня
// Кандидаты начинаются каждые SlotStepMinutes минут от startHour:00;
// кандидат попадает в список, только если конец занятия не выходит
// за границу endHour:00. Чистая функция трёх параметров
func GenerateDaySlots(startHour, endHour, durationMinutes int) []TimeSlot {
	dayEnd := types.TimeString(fmt.Sprintf("%02d:00", endHour))

	slots := make([]TimeSlot, 0)
	current := types.TimeString(fmt.Sprintf("%02d:00", startHour))

	for current.IsBefore(dayEnd) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			break
		}

		if !end.IsAfter(dayEnd) {
			slots = append(slots, TimeSlot{Start: current, End: end})
		}

		current, err = current.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
	}

	return slots
}

// ContainsSlot проверяет, что слот входит в сгенерированный набор
func ContainsSlot(slots []TimeSlot, candidate TimeSlot) bool {
	for _, s := range slots {
		if s == candidate {
			return true
		}
	}
	return false
}
