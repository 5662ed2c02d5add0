package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) GetByRoomAndDate(_ context.Context, _ domain.Room, _ time.Time, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *stubBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func slotByKey(t *testing.T, slots []Slot, key string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.Slot == key {
			return s
		}
	}
	t.Fatalf("slot %s not found", key)
	return Slot{}
}

func TestExecute_FutureDateAllFree(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Room: domain.RoomHall1,
		Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "hall1", resp.Room)
	require.Len(t, resp.Slots, 28)
	assert.Equal(t, "07:00-08:30", resp.Slots[0].Slot)
	assert.Equal(t, "20:30-22:00", resp.Slots[27].Slot)
	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s must be available", s.Slot)
	}
}

func TestExecute_BookedSlotsMarkedUnavailable(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ID:        1,
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("11:00"),
			Status:    domain.StatusScheduled,
		},
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Room: domain.RoomHall1,
		Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)

	// Занятие 10:00-11:00 задевает все слоты, пересекающие его интервал
	assert.False(t, slotByKey(t, resp.Slots, "09:00-10:30").Available)
	assert.False(t, slotByKey(t, resp.Slots, "09:30-11:00").Available)
	assert.False(t, slotByKey(t, resp.Slots, "10:00-11:30").Available)
	assert.False(t, slotByKey(t, resp.Slots, "10:30-12:00").Available)
	// Соприкасающиеся границы - не конфликт
	assert.True(t, slotByKey(t, resp.Slots, "08:30-10:00").Available)
	assert.True(t, slotByKey(t, resp.Slots, "11:00-12:30").Available)
}

func TestExecute_TodayStartedSlotsUnavailable(t *testing.T) {
	// Сейчас 10:15 - началось всё, что стартует в 10:00 и раньше
	now := time.Date(2025, 6, 10, 10, 15, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Room: domain.RoomHall2,
		Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, slotByKey(t, resp.Slots, "07:00-08:30").Available)
	assert.False(t, slotByKey(t, resp.Slots, "10:00-11:30").Available)
	assert.True(t, slotByKey(t, resp.Slots, "10:30-12:00").Available)
}

func TestExecute_PastDateAllUnavailable(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Room: domain.RoomHall1,
		Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 28)
	for _, s := range resp.Slots {
		assert.False(t, s.Available, "slot %s must be unavailable", s.Slot)
	}
}

func TestExecute_NonScheduledBookingsIgnored(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ID:        1,
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("11:30"),
			Status:    domain.StatusCancelled,
		},
	}}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Room: domain.RoomHall1,
		Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, slotByKey(t, resp.Slots, "10:00-11:30").Available)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{Room: domain.Room("garage")})

	var vErr *domain.ValidationErrors
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors(), 2)
	assert.Equal(t, "room", vErr.Errors()[0].Field)
	assert.Equal(t, "date", vErr.Errors()[1].Field)
}

func TestExecute_RepoFailure(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubBookingRepo{err: errors.New("connection reset")}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Room: domain.RoomHall1,
		Date: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
