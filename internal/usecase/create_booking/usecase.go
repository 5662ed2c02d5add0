package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/catalog"
	profileClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

// UseCase use case для создания записи на занятие
type UseCase struct {
	bookingRepo   BookingRepository
	catalogRepo   CatalogRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogRepo:   catalogRepo,
		profileClient: profileClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания записи
// Проверка пересечений и вставка выполняются в сериализуемой транзакции:
// два конкурентных запроса на один интервал не смогут пройти оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, service=%d, room=%s, date=%s, interval=%s-%s",
		req.ClientID, req.ServiceID, req.Room, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных (собираем все ошибки полей разом)
	// Проверка пересечений - часть той же коллекции: выполняется, когда
	// дата, границы интервала и зал пригодны, даже если другие поля невалидны
	now := uc.timeProvider.Now()
	v := validateRequest(req, now)
	if conflictCheckable(req) {
		status := domain.StatusScheduled
		bookings, err := uc.bookingRepo.GetByRoomAndDate(ctx, req.Room, req.Date, &status)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get room bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get room bookings: %v", ErrInternal, err)
		}
		if conflict := domain.FirstConflict(req.StartTime, req.EndTime, bookings, 0); conflict != nil {
			v.Add("start_time", fmt.Sprintf("time is already taken in %s (%s-%s)",
				req.Room, conflict.StartTime, conflict.EndTime))
		}
	}
	if v.HasErrors() {
		uc.logger.Warn("CreateBooking: validation failed: %v", v)
		return nil, v
	}

	// 2. Проверяем существование клиента
	// При недоступности ProfileService запись продолжается: клиент
	// уже прошёл аутентификацию на уровне API
	if _, err := uc.profileClient.GetClientProfileWithGracefulDegradation(ctx, req.ClientID); err != nil {
		if errors.Is(err, profileClient.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Warn("CreateBooking: proceeding without profile for client id=%d: %v", req.ClientID, err)
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем тренера (если указан)
	var trainer *domain.Trainer
	if req.TrainerID != nil {
		trainer, err = uc.catalogRepo.GetTrainer(ctx, *req.TrainerID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrTrainerNotFound) {
				uc.logger.Warn("CreateBooking: trainer id=%d not found", *req.TrainerID)
				return nil, ErrTrainerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get trainer id=%d: %v", *req.TrainerID, err)
			return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
		}
		if !trainer.IsActive {
			uc.logger.Warn("CreateBooking: trainer id=%d is inactive", *req.TrainerID)
			return nil, ErrTrainerNotFound
		}
	}

	var result *domain.Booking

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Запланированные занятия зала на дату с блокировкой (FOR UPDATE)
		status := domain.StatusScheduled
		bookings, err := uc.bookingRepo.GetByRoomAndDate(txCtx, req.Room, req.Date, &status)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get room bookings: %v", err)
			return fmt.Errorf("%w: failed to get room bookings: %v", ErrInternal, err)
		}

		// 5.2. Повторная проверка пересечений под блокировкой: ловит запись,
		// появившуюся между валидацией и транзакцией
		if conflict := domain.FirstConflict(req.StartTime, req.EndTime, bookings, 0); conflict != nil {
			uc.logger.Warn("CreateBooking: slot conflict with booking id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return &SlotConflictError{
				ConflictingSlot: domain.TimeSlot{Start: conflict.StartTime, End: conflict.EndTime}.Key(),
			}
		}

		// 5.3. Создаем запись
		booking := &domain.Booking{
			ClientID:    req.ClientID,
			ServiceID:   req.ServiceID,
			TrainerID:   req.TrainerID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Room:        req.Room,
			Status:      domain.StatusScheduled,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// EXCLUDE-ограничение в БД - последний рубеж против гонки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: database rejected overlapping insert")
				return &SlotConflictError{}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации, не прошедший повторы, означает проигранную
		// гонку за слот - для клиента это занятое время, а не сбой сервиса
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization conflict, slot lost to concurrent booking")
			return nil, &SlotConflictError{}
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	response := &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		TrainerID:       result.TrainerID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes(),
		Room:            string(result.Room),
		Status:          string(result.Status),
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}
	if trainer != nil {
		response.TrainerName = &trainer.FullName
	}

	return response, nil
}
