package get_carrito

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/service/carritos"
)

const msgNotFound = "каррито не найдено или истек срок его жизни"

type Handler struct {
	service CarritoService
	logger  Logger
}

func NewHandler(service CarritoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/carritos/{carritoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carritoID := vars["carritoId"]

	carrito, err := h.service.Get(r.Context(), carritoID)
	if err != nil {
		switch {
		case errors.Is(err, carritos.ErrCarritoNotFound):
			h.logger.Warn("GET /carritos/{id} - Carrito not found: carrito_id=%s", carritoID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /carritos/{id} - Failed to get carrito: carrito_id=%s, error=%v", carritoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /carritos/{id} - Carrito retrieved: carrito_id=%s", carritoID)
	handlers.RespondJSON(w, http.StatusOK, carrito)
}
