package quick_book

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

// UseCase use case для быстрой записи по ключу слота
// Быстрый режим принимает готовый слот из сетки дня вместо
// произвольного интервала: клиент выбирает из того, что ему показали
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

// Execute выполняет use case быстрой записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuickBook: client=%d, service=%d, date=%s, slot=%s",
		req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных и разбор ключа слота
	now := uc.timeProvider.Now()
	v, slot := validateRequest(req, now)
	if v.HasErrors() {
		uc.logger.Warn("QuickBook: validation failed: %v", v)
		return nil, v
	}

	// 2. Зал по умолчанию, если не указан
	room := domain.DefaultRoom()
	if req.Room != nil {
		room = *req.Room
	}

	// 3. Проверяем существование клиента
	if _, err := uc.profileClient.GetClientProfileWithGracefulDegradation(ctx, req.ClientID); err != nil {
		if errors.Is(err, profileClient.ErrClientNotFound) {
			uc.logger.Warn("QuickBook: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Warn("QuickBook: proceeding without profile for client id=%d: %v", req.ClientID, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("QuickBook: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("QuickBook: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("QuickBook: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Получаем тренера (если указан)
	var trainer *domain.Trainer
	if req.TrainerID != nil {
		trainer, err = uc.catalogRepo.GetTrainer(ctx, *req.TrainerID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrTrainerNotFound) {
				uc.logger.Warn("QuickBook: trainer id=%d not found", *req.TrainerID)
				return nil, ErrTrainerNotFound
			}
			uc.logger.Error("QuickBook: failed to get trainer id=%d: %v", *req.TrainerID, err)
			return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
		}
		if !trainer.IsActive {
			uc.logger.Warn("QuickBook: trainer id=%d is inactive", *req.TrainerID)
			return nil, ErrTrainerNotFound
		}
	}

	var result *domain.Booking

	// 6. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		status := domain.StatusScheduled
		bookings, err := uc.bookingRepo.GetByRoomAndDate(txCtx, room, req.Date, &status)
		if err != nil {
			uc.logger.Error("QuickBook: failed to get room bookings: %v", err)
			return fmt.Errorf("%w: failed to get room bookings: %v", ErrInternal, err)
		}

		if conflict := domain.FirstConflict(slot.Start, slot.End, bookings, 0); conflict != nil {
			uc.logger.Warn("QuickBook: slot conflict with booking id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return &SlotConflictError{
				ConflictingSlot: domain.TimeSlot{Start: conflict.StartTime, End: conflict.EndTime}.Key(),
			}
		}

		booking := &domain.Booking{
			ClientID:    req.ClientID,
			ServiceID:   req.ServiceID,
			TrainerID:   req.TrainerID,
			BookingDate: req.Date,
			StartTime:   slot.Start,
			EndTime:     slot.End,
			Room:        room,
			Status:      domain.StatusScheduled,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("QuickBook: database rejected overlapping insert")
				return &SlotConflictError{}
			}
			uc.logger.Error("QuickBook: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации, не прошедший повторы, означает проигранную
		// гонку за слот - для клиента это занятое время, а не сбой сервиса
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("QuickBook: serialization conflict, slot lost to concurrent booking")
			return nil, &SlotConflictError{}
		}
		return nil, err
	}

	uc.logger.Info("QuickBook: successfully created booking id=%d", result.ID)

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
		Slot:            domain.TimeSlot{Start: result.StartTime, End: result.EndTime}.Key(),
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
