package session

import (
	"net/http"

	"github.com/m04kA/SMC-SwapPortal/internal/api/handlers"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/portal/session
// Всегда 200: ошибки проверки сессии дают anonymous
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state := h.service.Bootstrap(r.Context())

	h.logger.Info("GET /session - status=%s", state.Status)
	handlers.RespondJSON(w, http.StatusOK, FromState(state))
}
