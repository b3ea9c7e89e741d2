package list_sedes

import (
	"net/http"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
)

type Handler struct {
	service CatalogoService
	logger  Logger
}

func NewHandler(service CatalogoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sedes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSedes(r.Context())
	if err != nil {
		h.logger.Error("GET /sedes - Failed to list sedes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sedes - Sedes retrieved: count=%d", len(result.Sedes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
