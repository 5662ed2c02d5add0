package quick_book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	profileClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type stubBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *booking
	out.ID = 77
	s.created = &out
	return &out, nil
}

func (s *stubBookingRepo) GetByRoomAndDate(_ context.Context, _ domain.Room, _ time.Time, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type stubCatalogRepo struct {
	service *domain.Service
	trainer *domain.Trainer
}

func (s *stubCatalogRepo) GetService(_ context.Context, _ int64) (*domain.Service, error) {
	return s.service, nil
}

func (s *stubCatalogRepo) GetTrainer(_ context.Context, _ int64) (*domain.Trainer, error) {
	return s.trainer, nil
}

type stubProfileClient struct {
	err error
}

func (s *stubProfileClient) GetClientProfileWithGracefulDegradation(_ context.Context, _ int64) (*profileClient.Profile, error) {
	return nil, s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(bookings *stubBookingRepo) *UseCase {
	catalog := &stubCatalogRepo{
		service: &domain.Service{ID: 1, Name: "Плавание", Price: 900, IsActive: true},
	}
	uc := NewUseCase(bookings, catalog, &stubProfileClient{}, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:  10,
		ServiceID: 1,
		Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		Slot:      "10:00-11:30",
	}
}

func TestExecute_SuccessWithDefaultRoom(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, "10:00-11:30", resp.Slot)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:30"), resp.EndTime)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, string(domain.RoomHall1), resp.Room)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.RoomHall1, repo.created.Room)
}

func TestExecute_ExplicitRoom(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo)

	room := domain.RoomPool
	req := validRequest()
	req.Room = &room

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomPool), resp.Room)
}

func TestExecute_MalformedSlotKey(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{})

	tests := []struct {
		name string
		slot string
	}{
		{"empty", ""},
		{"no dash", "10:00 11:30"},
		{"garbage", "morning"},
		{"inverted", "11:30-10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Slot = tt.slot

			_, err := uc.Execute(context.Background(), req)

			var vErr *domain.ValidationErrors
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "slot", vErr.Errors()[0].Field)
		})
	}
}

func TestExecute_SlotOutsideGrid(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{})

	tests := []struct {
		name string
		slot string
	}{
		{"off-grid start", "10:15-11:45"},
		{"wrong duration", "10:00-11:00"},
		{"before opening", "06:00-07:30"},
		{"past closing", "21:00-22:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Slot = tt.slot

			_, err := uc.Execute(context.Background(), req)

			var vErr *domain.ValidationErrors
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Errors(), 1)
			assert.Equal(t, "slot", vErr.Errors()[0].Field)
			assert.Equal(t, "slot is not in the bookable grid", vErr.Errors()[0].Message)
		})
	}
}

func TestExecute_SlotTakenNamesConflictingInterval(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ID:        1,
			StartTime: types.TimeString("10:30"),
			EndTime:   types.TimeString("12:00"),
			Status:    domain.StatusScheduled,
		},
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "10:30-12:00", conflict.ConflictingSlot)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DatabaseRejectsRace(t *testing.T) {
	repo := &stubBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ClientNotFound(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{})
	uc.profileClient = &stubProfileClient{err: profileClient.ErrClientNotFound}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClientNotFound)
}
