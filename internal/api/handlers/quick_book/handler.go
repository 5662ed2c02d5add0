package quick_book

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	quickBook "github.com/m04kA/SMC-ScheduleService/internal/usecase/quick_book"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации данных записи"
	msgMissingClientID    = "отсутствует ID клиента"
	msgSlotTaken          = "выбранный слот уже занят"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgTrainerNotFound    = "тренер не найден"
)

type Handler struct {
	useCase QuickBookUseCase
	logger  Logger
}

func NewHandler(useCase QuickBookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quick
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/quick - Missing client ID")
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req QuickBookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quick - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, parseErrs := req.ToUseCaseRequest(clientID)
	if parseErrs.HasErrors() {
		h.logger.Warn("POST /bookings/quick - Failed to parse request: %v", parseErrs)
		handlers.RespondValidationErrors(w, msgValidationFailed, parseErrs.Errors())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErrs *domain.ValidationErrors
		var conflictErr *quickBook.SlotConflictError

		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /bookings/quick - Validation failed: client_id=%d", clientID)
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErrs.Errors())

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings/quick - Slot conflict: client_id=%d, slot=%s, conflicting_slot=%s",
				clientID, req.Slot, conflictErr.ConflictingSlot)
			if conflictErr.ConflictingSlot != "" {
				handlers.RespondConflict(w, msgSlotTaken+": "+conflictErr.ConflictingSlot)
			} else {
				handlers.RespondConflict(w, msgSlotTaken)
			}

		case errors.Is(err, quickBook.ErrSlotTaken):
			h.logger.Warn("POST /bookings/quick - Slot taken: client_id=%d, slot=%s", clientID, req.Slot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, quickBook.ErrClientNotFound):
			h.logger.Warn("POST /bookings/quick - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, quickBook.ErrServiceNotFound):
			h.logger.Warn("POST /bookings/quick - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, quickBook.ErrTrainerNotFound):
			h.logger.Warn("POST /bookings/quick - Trainer not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		default:
			h.logger.Error("POST /bookings/quick - Failed to create booking: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/quick - Booking created successfully: booking_id=%d, client_id=%d, slot=%s",
		result.ID, clientID, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
