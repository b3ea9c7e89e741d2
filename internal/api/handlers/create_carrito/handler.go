package create_carrito

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/service/carritos"
)

const (
	msgInvalidReservaID     = "некорректный ID резервации"
	msgReservaNotFound      = "резервация не найдена"
	msgReservaNoFinalizable = "резервация не допускает открытие каррито"
)

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

// Handle POST /api/v1/reservas/{reservaId}/carrito
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservaID, err := strconv.ParseInt(vars["reservaId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservas/{id}/carrito - Invalid reserva ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservaID)
		return
	}

	carrito, err := h.service.Create(r.Context(), reservaID)
	if err != nil {
		switch {
		case errors.Is(err, carritos.ErrReservaNotFound):
			h.logger.Warn("POST /reservas/{id}/carrito - Reserva not found: reserva_id=%d", reservaID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, carritos.ErrReservaNotFinalizable):
			h.logger.Warn("POST /reservas/{id}/carrito - Reserva not finalizable: reserva_id=%d", reservaID)
			handlers.RespondError(w, http.StatusConflict, msgReservaNoFinalizable)

		default:
			h.logger.Error("POST /reservas/{id}/carrito - Failed to create carrito: reserva_id=%d, error=%v",
				reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas/{id}/carrito - Carrito created: carrito_id=%s, reserva_id=%d",
		carrito.ID, reservaID)
	handlers.RespondJSON(w, http.StatusCreated, carrito)
}
