package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "параметр date обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed = "ошибка валидации запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{room}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	room := domain.Room(vars["room"])

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{room}/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{room}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Room: room,
		Date: date,
	})
	if err != nil {
		var validationErrs *domain.ValidationErrors

		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("GET /rooms/{room}/available-slots - Validation failed: room=%s", room)
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErrs.Errors())

		default:
			h.logger.Error("GET /rooms/{room}/available-slots - Failed to get slots: room=%s, error=%v", room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{room}/available-slots - Slots retrieved: room=%s, date=%s, count=%d",
		room, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
