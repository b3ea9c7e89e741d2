package get_reserva

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ucc-comedor/ComedorService/internal/api/handlers"
	"github.com/ucc-comedor/ComedorService/internal/api/middleware"
	"github.com/ucc-comedor/ComedorService/internal/service/reservas"
)

const (
	msgInvalidReservaID = "некорректный ID резервации"
	msgNotFound         = "резервация не найдена"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service ReservaService
	logger  Logger
}

func NewHandler(service ReservaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservas/{reservaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservaID, err := strconv.ParseInt(vars["reservaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservas/{id} - Invalid reserva ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservaID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservas/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Сервис сам проверит принадлежность резервации пользователю
	reserva, err := h.service.GetByID(r.Context(), reservaID, userID)
	if err != nil {
		switch {
		case errors.Is(err, reservas.ErrReservaNotFound):
			h.logger.Warn("GET /reservas/{id} - Reserva not found: reserva_id=%d", reservaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservas.ErrAccessDenied):
			h.logger.Warn("GET /reservas/{id} - Access denied: reserva_id=%d, user_id=%d", reservaID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservas/{id} - Failed to get reserva: reserva_id=%d, error=%v", reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservas/{id} - Reserva retrieved: reserva_id=%d, user_id=%d", reservaID, userID)
	handlers.RespondJSON(w, http.StatusOK, reserva)
}
