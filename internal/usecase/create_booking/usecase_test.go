package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	profileClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// --- Стабы зависимостей ---

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
	out.ID = 42
	out.CreatedAt = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	s.created = &out
	return &out, nil
}

func (s *stubBookingRepo) GetByRoomAndDate(_ context.Context, _ domain.Room, _ time.Time, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type stubCatalogRepo struct {
	service    *domain.Service
	serviceErr error
	trainer    *domain.Trainer
	trainerErr error
}

func (s *stubCatalogRepo) GetService(_ context.Context, _ int64) (*domain.Service, error) {
	return s.service, s.serviceErr
}

func (s *stubCatalogRepo) GetTrainer(_ context.Context, _ int64) (*domain.Trainer, error) {
	return s.trainer, s.trainerErr
}

type stubProfileClient struct {
	profile *profileClient.Profile
	err     error
}

func (s *stubProfileClient) GetClientProfileWithGracefulDegradation(_ context.Context, _ int64) (*profileClient.Profile, error) {
	return s.profile, s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type failingTxManager struct {
	err error
}

func (m failingTxManager) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return m.err
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

// --- Вспомогательные конструкторы ---

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestUseCase(bookings *stubBookingRepo, catalog *stubCatalogRepo, profiles *stubProfileClient) *UseCase {
	uc := NewUseCase(bookings, catalog, profiles, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func activeService() *domain.Service {
	return &domain.Service{ID: 1, Name: "Йога", Price: 1500, DurationMinutes: 60, IsActive: true}
}

func validRequest() *Request {
	return &Request{
		ClientID:  10,
		ServiceID: 1,
		Date:      time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Room:      domain.RoomHall1,
	}
}

func scheduled(id int64, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    domain.StatusScheduled,
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(10), resp.ClientID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Йога", resp.ServiceName)
	assert.Equal(t, float64(1500), resp.ServicePrice)
	assert.Nil(t, resp.TrainerName)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusScheduled, repo.created.Status)
}

func TestExecute_SuccessWithTrainer(t *testing.T) {
	trainerID := int64(7)
	catalog := &stubCatalogRepo{
		service: activeService(),
		trainer: &domain.Trainer{ID: trainerID, FullName: "Анна Петрова", IsActive: true},
	}
	uc := newTestUseCase(&stubBookingRepo{}, catalog, &stubProfileClient{})

	req := validRequest()
	req.TrainerID = &trainerID

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.TrainerName)
	assert.Equal(t, "Анна Петрова", *resp.TrainerName)
}

func TestExecute_ValidationCollectsAllErrors(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	req := &Request{Room: domain.Room("garage")}
	_, err := uc.Execute(context.Background(), req)

	var vErr *domain.ValidationErrors
	require.ErrorAs(t, err, &vErr)

	fields := make([]string, 0, len(vErr.Errors()))
	for _, fe := range vErr.Errors() {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{
		"client_id", "service_id", "booking_date", "start_time", "end_time", "room",
	}, fields)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	req := validRequest()
	req.Date = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	var vErr *domain.ValidationErrors
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors(), 1)
	assert.Equal(t, "booking_date", vErr.Errors()[0].Field)
}

func TestValidateRequest_DurationBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		endTime types.TimeString
		wantErr bool
	}{
		{"29 minutes too short", "10:29", true},
		{"30 minutes minimum", "10:30", false},
		{"180 minutes maximum", "13:00", false},
		{"181 minutes too long", "13:01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.EndTime = tt.endTime

			v := validateRequest(req, testNow)
			if tt.wantErr {
				require.True(t, v.HasErrors())
				assert.Equal(t, "end_time", v.Errors()[0].Field)
			} else {
				assert.False(t, v.HasErrors(), "unexpected errors: %v", v)
			}
		})
	}
}

func TestValidateRequest_WorkingHours(t *testing.T) {
	tests := []struct {
		name      string
		start     types.TimeString
		end       types.TimeString
		wantField string
	}{
		{"before opening", "06:00", "07:00", "start_time"},
		{"opens at seven", "07:00", "08:00", ""},
		{"last start hour", "22:00", "23:00", ""},
		{"past closing", "22:30", "23:30", "end_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			v := validateRequest(req, testNow)
			if tt.wantField == "" {
				assert.False(t, v.HasErrors(), "unexpected errors: %v", v)
				return
			}
			require.True(t, v.HasErrors())
			assert.Equal(t, tt.wantField, v.Errors()[0].Field)
		})
	}
}

func TestExecute_ConflictReportedAsFieldError(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{scheduled(1, "10:00", "11:00")}}
	uc := newTestUseCase(repo, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	req := validRequest()
	req.StartTime = types.TimeString("10:30")
	req.EndTime = types.TimeString("11:30")

	_, err := uc.Execute(context.Background(), req)

	var vErr *domain.ValidationErrors
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors(), 1)
	assert.Equal(t, "start_time", vErr.Errors()[0].Field)
	assert.Contains(t, vErr.Errors()[0].Message, "10:00-11:00")
	assert.Nil(t, repo.created)
}

func TestExecute_PastDateAndConflictReportedTogether(t *testing.T) {
	// Ошибки полей не отменяют проверку пересечений:
	// прошедшая дата и занятое время попадают в одну коллекцию
	repo := &stubBookingRepo{bookings: []*domain.Booking{scheduled(1, "10:00", "11:00")}}
	uc := newTestUseCase(repo, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	req := validRequest()
	req.Date = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	req.StartTime = types.TimeString("10:30")
	req.EndTime = types.TimeString("11:30")

	_, err := uc.Execute(context.Background(), req)

	var vErr *domain.ValidationErrors
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors(), 2)
	assert.Equal(t, "booking_date", vErr.Errors()[0].Field)
	assert.Equal(t, "start_time", vErr.Errors()[1].Field)
	assert.Contains(t, vErr.Errors()[1].Message, "10:00-11:00")
}

func TestValidateRequest_Idempotent(t *testing.T) {
	req := &Request{
		ClientID:  -1,
		Date:      time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("10:15"),
		Room:      domain.Room("garage"),
	}

	first := validateRequest(req, testNow)
	second := validateRequest(req, testNow)

	require.True(t, first.HasErrors())
	assert.Equal(t, first.Errors(), second.Errors())
}

func TestExecute_TouchingBoundariesAccepted(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{scheduled(1, "10:00", "11:00")}}
	uc := newTestUseCase(repo, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	req := validRequest()
	req.StartTime = types.TimeString("11:00")
	req.EndTime = types.TimeString("12:00")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_SerializationFailureMapsToConflict(t *testing.T) {
	// Конфликт сериализации на COMMIT, не прошедший повторы,
	// для клиента означает занятое время, а не 500
	uc := newTestUseCase(&stubBookingRepo{}, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})
	uc.txManager = failingTxManager{
		err: fmt.Errorf("transaction failed: commit: %w", &pq.Error{Code: "40001"}),
	}

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DatabaseRejectsRace(t *testing.T) {
	// Гонка: проверка пересечений прошла, но EXCLUDE-ограничение
	// в БД отклонило вставку конкурентной записи
	repo := &stubBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_InactiveService(t *testing.T) {
	service := activeService()
	service.IsActive = false
	uc := newTestUseCase(&stubBookingRepo{}, &stubCatalogRepo{service: service}, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveTrainer(t *testing.T) {
	trainerID := int64(7)
	catalog := &stubCatalogRepo{
		service: activeService(),
		trainer: &domain.Trainer{ID: trainerID, FullName: "Анна Петрова", IsActive: false},
	}
	uc := newTestUseCase(&stubBookingRepo{}, catalog, &stubProfileClient{})

	req := validRequest()
	req.TrainerID = &trainerID

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_ClientNotFound(t *testing.T) {
	profiles := &stubProfileClient{err: profileClient.ErrClientNotFound}
	uc := newTestUseCase(&stubBookingRepo{}, &stubCatalogRepo{service: activeService()}, profiles)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ProfileServiceDegraded(t *testing.T) {
	// При недоступности сервиса профилей запись продолжается
	profiles := &stubProfileClient{err: profileClient.ErrServiceDegraded}
	uc := newTestUseCase(&stubBookingRepo{}, &stubCatalogRepo{service: activeService()}, profiles)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_InternalErrorOnRepoFailure(t *testing.T) {
	repo := &stubBookingRepo{createErr: errors.New("connection reset")}
	uc := newTestUseCase(repo, &stubCatalogRepo{service: activeService()}, &stubProfileClient{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
