package quick_book

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	quickBook "github.com/m04kA/SMC-ScheduleService/internal/usecase/quick_book"
)

// QuickBookRequest HTTP request model
type QuickBookRequest struct {
	ServiceID   int64   `json:"serviceId"`
	TrainerID   *int64  `json:"trainerId,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	Slot        string  `json:"slot"`        // "10:00-11:30"
	Room        *string `json:"room,omitempty"`
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
	Slot            string  `json:"slot"`
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
func (r *QuickBookRequest) ToUseCaseRequest(clientID int64) (*quickBook.Request, *domain.ValidationErrors) {
	v := &domain.ValidationErrors{}

	req := &quickBook.Request{
		ClientID:  clientID,
		ServiceID: r.ServiceID,
		TrainerID: r.TrainerID,
		Slot:      r.Slot,
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

	if r.Room != nil {
		room := domain.Room(*r.Room)
		req.Room = &room
	}

	return req, v
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quickBook.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		TrainerID:       resp.TrainerID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Slot:            resp.Slot,
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
