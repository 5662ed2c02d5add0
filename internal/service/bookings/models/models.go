package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetClientBookingsRequest запрос на получение записей клиента
type GetClientBookingsRequest struct {
	ClientID int64      `json:"clientId"`
	Status   *string    `json:"status,omitempty"`   // Фильтр по статусу (опционально)
	FromDate *time.Time `json:"fromDate,omitempty"` // Начало периода (опционально)
	ToDate   *time.Time `json:"toDate,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetClientBookingsRequest) ToDomainFilter() (domain.ClientBookingsFilter, error) {
	filter := domain.ClientBookingsFilter{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetRoomScheduleRequest запрос на расписание зала на дату
type GetRoomScheduleRequest struct {
	Room   domain.Room `json:"room"`
	Date   time.Time   `json:"date"`
	Status *string     `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	ServiceID   int64   `json:"serviceId"`
	TrainerID   *int64  `json:"trainerId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "11:30"
	Slot        string  `json:"slot"`        // "10:00-11:30"
	Duration    int     `json:"durationMinutes"`
	Room        string  `json:"room"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// RoomScheduleResponse ответ с расписанием зала на дату
type RoomScheduleResponse struct {
	Room     string            `json:"room"`
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ServiceID:   b.ServiceID,
		TrainerID:   b.TrainerID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Slot:        domain.TimeSlot{Start: b.StartTime, End: b.EndTime}.Key(),
		Duration:    b.DurationMinutes(),
		Room:        string(b.Room),
		Status:      string(b.Status),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: items}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
