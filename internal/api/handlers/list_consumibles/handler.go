package list_consumibles

import (
	"errors"
	"net/http"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/service/catalogo"
)

const msgInvalidTipo = "некорректный tipo, ожидается plato, bebida или postre"

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

// Handle GET /api/v1/consumibles?tipo=plato&disponibles=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var tipo *string
	if t := r.URL.Query().Get("tipo"); t != "" {
		tipo = &t
	}

	// По умолчанию отдаем только доступные позиции
	includeUnavailable := r.URL.Query().Get("disponibles") == "false"

	result, err := h.service.ListConsumibles(r.Context(), tipo, includeUnavailable)
	if err != nil {
		switch {
		case errors.Is(err, catalogo.ErrInvalidInput):
			h.logger.Warn("GET /consumibles - Invalid tipo filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTipo)

		default:
			h.logger.Error("GET /consumibles - Failed to list consumibles: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consumibles - Consumibles retrieved: count=%d", len(result.Consumibles))
	handlers.RespondJSON(w, http.StatusOK, result)
}
