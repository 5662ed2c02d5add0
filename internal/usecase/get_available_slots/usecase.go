package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UseCase use case для получения слотов зала на дату
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: room=%s, date=%s", req.Room, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if v := validateRequest(req); v.HasErrors() {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", v)
		return nil, v
	}

	now := uc.timeProvider.Now()

	// 2. Сетка дня: шаг 30 минут, длительность занятия 90 минут
	grid := domain.GenerateDaySlots(domain.DayStartHour, domain.DayEndHour, domain.QuickSlotDurationMinutes)

	// 3. Запланированные занятия зала на дату
	status := domain.StatusScheduled
	bookings, err := uc.bookingRepo.GetByRoomAndDate(ctx, req.Room, req.Date, &status)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get room bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get room bookings: %v", ErrInternal, err)
	}

	// 4. Размечаем доступность
	slots := calculateAvailability(grid, req.Date, bookings, now)

	uc.logger.Info("GetAvailableSlots: generated %d slots for room=%s, date=%s",
		len(slots), req.Room, req.Date.Format(domain.DateFormat))

	return &Response{
		Room:  string(req.Room),
		Date:  req.Date,
		Slots: slots,
	}, nil
}
