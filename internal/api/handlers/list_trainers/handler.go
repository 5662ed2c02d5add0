package list_trainers

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTrainers(r.Context())
	if err != nil {
		h.logger.Error("GET /trainers - Failed to list trainers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /trainers - Trainers retrieved: count=%d", len(result.Trainers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
