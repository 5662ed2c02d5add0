package get_client_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus   = "недопустимый статус"
	msgMissingClientID = "отсутствует ID клиента"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings?status=&from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/bookings - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	authClientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id}/bookings - Missing client ID")
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	// Клиент видит только свою историю
	if authClientID != clientID {
		h.logger.Warn("GET /clients/{id}/bookings - Access denied: client_id=%d, auth_client_id=%d",
			clientID, authClientID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetClientBookingsRequest{ClientID: clientID}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if from := query.Get("from"); from != "" {
		fromDate, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /clients/{id}/bookings - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.FromDate = &fromDate
	}
	if to := query.Get("to"); to != "" {
		toDate, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /clients/{id}/bookings - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.ToDate = &toDate
	}

	result, err := h.service.GetClientBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/bookings - Invalid status filter: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{id}/bookings - Failed to get bookings: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/bookings - Bookings retrieved: client_id=%d, count=%d",
		clientID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
