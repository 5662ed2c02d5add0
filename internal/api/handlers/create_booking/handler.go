package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации данных записи"
	msgMissingClientID    = "отсутствует ID клиента"
	msgSlotTaken          = "выбранное время уже занято"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgTrainerNotFound    = "тренер не найден"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing client ID")
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Ошибки разбора даты и времени - ошибки полей, как и остальная валидация
	useCaseReq, parseErrs := req.ToUseCaseRequest(clientID)
	if parseErrs.HasErrors() {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", parseErrs)
		handlers.RespondValidationErrors(w, msgValidationFailed, parseErrs.Errors())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErrs *domain.ValidationErrors
		var conflictErr *createBooking.SlotConflictError

		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /bookings - Validation failed: client_id=%d", clientID)
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErrs.Errors())

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Slot conflict: client_id=%d, conflicting_slot=%s",
				clientID, conflictErr.ConflictingSlot)
			if conflictErr.ConflictingSlot != "" {
				handlers.RespondConflict(w, msgSlotTaken+": "+conflictErr.ConflictingSlot)
			} else {
				handlers.RespondConflict(w, msgSlotTaken)
			}

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: client_id=%d", clientID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrTrainerNotFound):
			h.logger.Warn("POST /bookings - Trainer not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d",
		result.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
