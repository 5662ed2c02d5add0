package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func makeBooking(date time.Time, start string, status BookingStatus) *Booking {
	return &Booking{
		ID:          1,
		ClientID:    10,
		ServiceID:   20,
		BookingDate: date,
		StartTime:   ts(start),
		EndTime:     ts("23:00"),
		Room:        RoomHall1,
		Status:      status,
	}
}

func TestCanBeCancelled_LeadTime(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	// За 3 часа до начала - можно
	now := time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC)
	b := makeBooking(day, "10:00", StatusScheduled)
	assert.True(t, b.CanBeCancelled(now))

	// Ровно за 2 часа - можно (граница включается)
	now = time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	assert.True(t, b.CanBeCancelled(now))

	// За 1 час - нельзя
	now = time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	assert.False(t, b.CanBeCancelled(now))
}

func TestCanBeCancelled_OnlyScheduled(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

	for _, status := range []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		b := makeBooking(day, "10:00", status)
		assert.False(t, b.CanBeCancelled(now), "status=%s", status)
	}

	assert.True(t, makeBooking(day, "10:00", StatusScheduled).CanBeCancelled(now))
}

func TestCanBeCancelled_PastDate(t *testing.T) {
	day := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	b := makeBooking(day, "10:00", StatusScheduled)
	assert.False(t, b.CanBeCancelled(now))
}

func TestCanBeCancelled_AlreadyStartedToday(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	b := makeBooking(day, "10:00", StatusScheduled)

	// Занятие началось час назад
	now := time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)
	assert.False(t, b.CanBeCancelled(now))

	// Ровно в момент начала - уже нельзя
	now = time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	assert.False(t, b.CanBeCancelled(now))
}

func TestCanTransitionTo(t *testing.T) {
	scheduled := &Booking{Status: StatusScheduled}

	assert.True(t, scheduled.CanTransitionTo(StatusCompleted))
	assert.True(t, scheduled.CanTransitionTo(StatusCancelled))
	assert.True(t, scheduled.CanTransitionTo(StatusNoShow))
	assert.False(t, scheduled.CanTransitionTo(StatusScheduled))

	// Конечные статусы терминальны
	for _, status := range []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		b := &Booking{Status: status}
		assert.False(t, b.CanTransitionTo(StatusScheduled), "from=%s", status)
		assert.False(t, b.CanTransitionTo(StatusCompleted), "from=%s", status)
	}
}

func TestDurationMinutes(t *testing.T) {
	b := &Booking{StartTime: ts("10:00"), EndTime: ts("11:30")}
	assert.Equal(t, 90, b.DurationMinutes())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusScheduled))
	assert.True(t, IsValidStatus(StatusNoShow))
	assert.False(t, IsValidStatus(BookingStatus("confirmed")))
	assert.False(t, IsValidStatus(BookingStatus("")))
}
