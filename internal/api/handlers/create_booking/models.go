package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   int64   `json:"serviceId"`
	TrainerID   *int64  `json:"trainerId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "11:30"
	Room        string  `json:"room"`        // "hall1"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	ServiceID       int64   `json:"serviceId"`
	TrainerID       *int64  `json:"trainerId,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Room            string  `json:"room"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	TrainerName     *string `json:"trainerName,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибки разбора даты и времени собираются как ошибки полей:
// отсутствующие значения оставляются нулевыми, их проверит use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, *domain.ValidationErrors) {
	v := &domain.ValidationErrors{}

	req := &createBooking.Request{
		ClientID:  clientID,
		ServiceID: r.ServiceID,
		TrainerID: r.TrainerID,
		Room:      domain.Room(r.Room),
		Notes:     r.Notes,
	}

	if r.BookingDate != "" {
		date, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			v.Add("booking_date", "booking_date must be in YYYY-MM-DD format")
		} else {
			req.Date = date
		}
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			v.Add("start_time", "start_time must be in HH:MM format")
		} else {
			req.StartTime = startTime
		}
	}

	if r.EndTime != "" {
		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			v.Add("end_time", "end_time must be in HH:MM format")
		} else {
			req.EndTime = endTime
		}
	}

	return req, v
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		TrainerID:       resp.TrainerID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Room:            resp.Room,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		TrainerName:     resp.TrainerName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
