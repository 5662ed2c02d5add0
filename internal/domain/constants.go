package domain

import "time"

// Рабочий день комплекса и ограничения занятий
const (
	// DayStartHour час открытия комплекса
	DayStartHour = 7
	// DayEndHour последний час, в который может начаться занятие
	DayEndHour = 22
	// LatestEndHour час, до которого должно закончиться последнее занятие
	LatestEndHour = 23

	// MinDurationMinutes минимальная длительность занятия
	MinDurationMinutes = 30
	// MaxDurationMinutes максимальная длительность занятия
	MaxDurationMinutes = 180

	// SlotStepMinutes шаг генерации кандидатов слотов
	SlotStepMinutes = 30
	// QuickSlotDurationMinutes длительность слота быстрой записи
	QuickSlotDurationMinutes = 90
)

// CancellationLeadTime минимальный интервал между отменой и началом занятия
const CancellationLeadTime = 2 * time.Hour

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
