package cancel_reserva

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
	msgCannotCancel     = "резервацию нельзя отменить"
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

// Handle PATCH /api/v1/reservas/{reservaId}/cancelar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservaID, err := strconv.ParseInt(vars["reservaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservas/{id}/cancelar - Invalid reserva ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservaID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservas/{id}/cancelar - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), reservaID, userID); err != nil {
		switch {
		case errors.Is(err, reservas.ErrReservaNotFound):
			h.logger.Warn("PATCH /reservas/{id}/cancelar - Reserva not found: reserva_id=%d", reservaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservas.ErrAccessDenied):
			h.logger.Warn("PATCH /reservas/{id}/cancelar - Access denied: reserva_id=%d, user_id=%d",
				reservaID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservas.ErrCannotCancel):
			h.logger.Warn("PATCH /reservas/{id}/cancelar - Cannot cancel: reserva_id=%d, user_id=%d",
				reservaID, userID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /reservas/{id}/cancelar - Failed to cancel: reserva_id=%d, error=%v",
				reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservas/{id}/cancelar - Reserva cancelled: reserva_id=%d, user_id=%d",
		reservaID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
