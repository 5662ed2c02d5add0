package list_services

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidClientID = "некорректный параметр clientId"
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

// Handle GET /api/v1/services?clientId=
// Параметр clientId опционален: с ним услуги с действующим абонементом
// клиента поднимаются в начало списка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var clientID *int64
	if raw := r.URL.Query().Get("clientId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /services - Invalid clientId: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidClientID)
			return
		}
		clientID = &parsed
	}

	result, err := h.service.ListServices(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved: count=%d", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
