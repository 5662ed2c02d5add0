package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// Service сервис для работы с записями на занятия
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись по ID
// Клиент может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, id int64, clientID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for client=%d", id, clientID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.ClientID != clientID {
		s.logger.Warn("GetByID: access denied for client=%d to booking id=%d", clientID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю записей клиента
// Опционально фильтрует по статусу и периоду
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetClientBookings: invalid status=%v for client=%d", req.Status, req.ClientID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, filter)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomSchedule получает расписание зала на дату
// По умолчанию возвращает только запланированные занятия
func (s *Service) GetRoomSchedule(ctx context.Context, req *models.GetRoomScheduleRequest) (*models.RoomScheduleResponse, error) {
	s.logger.Info("GetRoomSchedule: fetching schedule for room=%s, date=%s",
		req.Room, req.Date.Format(domain.DateFormat))

	if !domain.IsValidRoom(req.Room) {
		s.logger.Warn("GetRoomSchedule: unknown room=%s", req.Room)
		return nil, fmt.Errorf("%w: unknown room", ErrInvalidInput)
	}

	status := domain.StatusScheduled
	domainStatus := &status
	if req.Status != nil {
		converted, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetRoomSchedule: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	bookings, err := s.bookingRepo.GetByRoomAndDate(ctx, req.Room, req.Date, domainStatus)
	if err != nil {
		s.logger.Error("GetRoomSchedule: repository error for room=%s: %v", req.Room, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomSchedule: successfully fetched %d bookings for room=%s", len(bookings), req.Room)

	list := models.FromDomainBookingList(bookings)
	return &models.RoomScheduleResponse{
		Room:     string(req.Room),
		Date:     req.Date.Format(domain.DateFormat),
		Bookings: list.Bookings,
	}, nil
}

// Cancel отменяет запись клиента
// Применяет политику отмены: только запланированное занятие, дата не в прошлом,
// занятие ещё не началось, до начала не меньше двух часов
func (s *Service) Cancel(ctx context.Context, bookingID int64, clientID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by client=%d", bookingID, clientID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.ClientID != clientID {
		s.logger.Warn("Cancel: access denied for client=%d to booking id=%d", clientID, bookingID)
		return ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if !booking.CanBeCancelled(now) {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s, date=%s %s",
			bookingID, booking.Status, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус записи (административная операция)
// Допустимы только переходы из scheduled: completed, cancelled, no_show
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}
