package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a class booking in a room of the sport complex
type Booking struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	TrainerID *int64 // NULL = занятие без закреплённого тренера

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Room        Room
	Status      BookingStatus

	Notes *string

	CreatedAt time.Time
}

// DurationMinutes возвращает длительность занятия в минутах
func (b *Booking) DurationMinutes() int {
	minutes, err := b.EndTime.Sub(b.StartTime)
	if err != nil {
		return 0
	}
	return minutes
}

// StartDateTime возвращает полную дату-время начала занятия
func (b *Booking) StartDateTime() time.Time {
	t, err := b.StartTime.At(b.BookingDate)
	if err != nil {
		return b.BookingDate
	}
	return t
}

// IsUpcoming returns true if the booking has not started yet
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.StartDateTime().After(now)
}

// CanBeCancelled проверяет политику отмены записи
// Правила применяются по порядку, каждое - жёсткое вето:
//  1. Отменить можно только запланированное занятие
//  2. Занятие в прошедшую дату отменить нельзя
//  3. Уже начавшееся сегодняшнее занятие отменить нельзя
//  4. Отмена возможна минимум за CancellationLeadTime до начала
func (b *Booking) CanBeCancelled(now time.Time) bool {
	if b.Status != StatusScheduled {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	bookingDay := time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(), 0, 0, 0, 0, now.Location())

	if bookingDay.Before(today) {
		return false
	}

	start := b.StartDateTime()
	if bookingDay.Equal(today) && !start.After(now) {
		return false
	}

	return start.Sub(now) >= CancellationLeadTime
}

// CanTransitionTo проверяет допустимость перехода статуса
// Возврат в scheduled невозможен ни из одного состояния;
// отменённые, завершённые и no-show записи терминальны
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	if status == StatusScheduled {
		return false
	}
	return b.Status == StatusScheduled
}

// ClientBookingsFilter фильтр для получения записей клиента
type ClientBookingsFilter struct {
	Status   *BookingStatus // Фильтр по статусу (опционально)
	FromDate *time.Time     // Начало периода (опционально)
	ToDate   *time.Time     // Конец периода (опционально)
}

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []BookingStatus{
	StatusScheduled,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValidStatus проверяет, что значение - допустимый статус записи
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
